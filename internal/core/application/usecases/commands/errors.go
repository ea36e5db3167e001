package commands

import "freshdispatch/internal/pkg/errs"

var errPartialPoint = errs.NewValueIsRequiredError("lat and lon must be given together")

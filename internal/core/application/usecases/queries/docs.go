// Package queries contains the read side: the courier's list of available
// orders and the customer's tracking view of one order.
//
// Read models are plain structs shaped for the HTTP layer. Handlers either go
// through the ports (when domain rules such as the dispatch radius apply) or
// read Postgres directly with raw SQL.
package queries

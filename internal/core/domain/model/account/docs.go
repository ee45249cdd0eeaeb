// Package account contains the marketplace participants and their delivery
// addresses. Every order references exactly one vendor, one supplier, and one
// address for each of them; the account aggregates carry the role information
// used to gate order status transitions and to scope queries.
package account

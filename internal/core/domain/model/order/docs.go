// Package order provides the Order entity: a destination state code and the
// date the order was placed. Delivery dates are derived from it by the
// delivery date calculator in the services package.
package order

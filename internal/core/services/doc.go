// Package services implements the driving ports on top of the driven
// ports. Services hold no business state of their own; every operation
// is a caller-triggered pass-through to the store, logged and with
// failures propagated unmodified. There is no retry policy anywhere.
package services

/*
Package inmemory provides an in-process dispatch recorder for the event bus.
Pass it to eventbus.WithObserver to inspect what the bus delivered.
*/
package inmemory

/*
Package eventbus provides a synchronous, in-process event bus.
It delivers one mutable event instance to the handlers of its type in registration order
and hands the instance back to the raiser, so handler mutations are the result channel.
*/
package eventbus

// Package validationtest provides helpers for testing implementations of the
// flow-core validation contracts.
//
// Spy wraps any validator and counts invocations, which is how short-circuit
// and conditional pass-through behavior is proven: attach a spy after the
// failing stage and assert it was never called. Pass and Fail build minimal
// canned validators for exercising compositions without writing bespoke
// mocks.
package validationtest

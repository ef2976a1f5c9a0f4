/*
Package assert turns verification failures from package verify into panics, for code paths where a violated constraint is a bug.

There are a few patterns that are supported:
  - Panicking on a failed verification with [Check] or [CheckFunc].
  - Collecting the results of many verification statements into one error with a [Collector].
  - Removal of assertions with a build flag to maintain runtime performance.

The panic value is a [*Violation] that records where the assertion was made and wraps the verification error,
so [errors.Is] with the verify sentinels works on a recovered value.

To turn off assertions build with the 'noassert' flag.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
*/
package assert

/*
Package verifyx is a fluent, type-aware runtime verification module.

The packages in this module are:
  - verify: subjects, the verification registry, chains, failure messages, and failure kinds.
  - verify/predicate: the pure value tests that back the built-in verifications.
  - assert: panicking assertions and error collection on top of verify.
  - env, slogx, structures/set: small supporting packages for configuration, logging, and sets.

A verification statement looks like this:

	err := verify.That(verify.Named("subject4", subject4)).Each().IsAlphabetic('-', '*')

The returned error, if any, has a complete message and a kind that can be matched with [errors.Is].
*/
package verifyx

/*
Package verify provides fluent, type-aware runtime verification of named values.

A verification statement captures a named [Subject], starts a [Chain], and invokes a verification by name.
The call returns nil if the verification passes, or an [*Error] with a complete, deterministic message that names the offending value.

	subject1 := "abc-def"
	err := verify.That(verify.Named("subject1", subject1)).IsAlphabetic()
	// Provided value (name: 'subject1') is not alphabetic.  Provided value is 'abc-def'.  Specified 'otherAllowedCharacters' is <null>.

# Subjects

Use [Named] to pass the name explicitly, or [Capture] with a single-field struct or single-entry map so that the identifier is the name.
The declared type of the subject is what applicability is checked against.
A pointer *T is the nullable form of T, and is dereferenced before a predicate sees it.

# Element mode

[Chain.Each] applies the next verification to every element of a slice, array, or [iter.Seq] subject.
Elements are checked in order and only the first failing element is reported. An empty sequence always passes.

# Failure kinds

Every failure has one of four kinds, which can be matched with [errors.Is] against the package sentinels:

  - [MissingArgument] ([ErrMissingArgument]) when the subject itself is nil and the verification forbids that.
  - [InvalidArgument] ([ErrInvalidArgument]) for the wrong type, a failed predicate, or a nil element in element mode.
  - [InvalidVerificationParameter] ([ErrInvalidVerificationParameter]) when a parameter of the verification is malformed.
  - [ProgrammerError] ([ErrProgrammerError]) for misuse of the chain, like an unknown verification name or reusing a chain.

A nil subject is always reported as nil, even if its declared type isn't applicable, because that's the more actionable diagnosis.

# Registry

Verifications live in an immutable [Registry]. [Default] holds the [BuiltinSpecs], and [NewRegistry] builds custom ones.
Registries are never modified after construction, so they may be shared freely between goroutines.

# Logging

Failures are logged at debug level when the VERIFYX_LOG_FAILURES environment variable is truthy, or to any logger given with [WithLogger].
*/
package verify

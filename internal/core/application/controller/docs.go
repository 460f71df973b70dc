// Package controller runs the quote wizard: it takes one customer's session
// and one submission, decides the next screen, and decides whether pricing or
// order registration happens on the way.
//
// Every gated transition follows the same rule: validate the draft for the
// scope the target screen needs, and on failure redisplay the submitting
// screen with the draft and the violations. Pricing runs at most once per
// submission and only after the gate passes. Registration runs only on the
// complete action after full validation.
//
// The controller holds no per-customer state. The caller loads a Session,
// passes it in, and persists or discards the Session returned in Result.
package controller

// Package wizard defines the vocabulary of the quote wizard: the screens it
// renders, the endpoints screens post to, and the Intent a submission declares.
//
// Flow:
//
//	Top ──> Input ──confirm──> Personal ──calculation──> Personal
//	          ^                  │   │
//	          └───backToInput────┘   └──confirm──> Confirm ──complete──> Complete
//	                                                 ^   │
//	                                                 └───┘ backToConfirm
//
// Any screen may post backToTop, which returns to Top and discards the draft.
package wizard

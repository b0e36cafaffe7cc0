package query

import "errors"

// ErrNoBubble is returned by VoterBubble when the voter has no group
// membership in the latest completed run.
var ErrNoBubble = errors.New("query: voter has no bubble in the latest run")

// ErrNoSharedVotes is returned by VoterSimilarity when the two voters
// share no co-voted item in the latest completed run.
var ErrNoSharedVotes = errors.New("query: voters share no co-voted item")

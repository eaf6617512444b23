package request

import "sync/atomic"

type Token uint64

// TokenStream tags the requests of one logical stream. Only the last issued
// token is current, whatever order the responses arrive in.
type TokenStream struct {
	latest atomic.Uint64
}

func (stream *TokenStream) Issue() Token {
	return Token(stream.latest.Add(1))
}

func (stream *TokenStream) IsLatest(token Token) bool {
	return uint64(token) == stream.latest.Load()
}

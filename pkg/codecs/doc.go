// Package codecs implements the runtime's codec resolution machinery: a
// process-wide registry that maps encoding names to codec capability bundles
// supplied by pluggable search functions, plus the standard error-recovery
// policies applied when encoding or decoding hits malformed data.
//
// # Core Types
//
// Registry: thread-safe state holding the ordered search path, the
// name-to-codec cache, and the error-handler table
//
//	reg := codecs.New()
//	reg.Register(mySearchFunc)
//	codec, err := reg.Lookup("UTF8") // normalized to "utf8"
//
// Codec: an immutable bundle of exactly four capabilities (encode, decode,
// incremental encoder factory, incremental decoder factory) validated once
// at construction
//
// ErrorHandler: a recovery policy invoked with a *UnicodeError and returning
// a replacement plus the offset at which the codec resumes
//
// # Resolution
//
// Lookup normalizes the requested name, consults the cache under a read
// lock, and on a miss walks a snapshot of the search path with no lock held.
// Search functions are arbitrary callbacks that may block, recurse into the
// registry, or register further search functions; releasing the lock before
// invoking them is what keeps reentrant callers deadlock-free. The price is
// that two racing first lookups may both resolve the same name; the insert
// is race-tolerant and the first writer wins, so every caller converges on a
// single shared *Codec instance.
//
// # Error Handlers
//
// Five handlers are pre-registered: strict, ignore, replace,
// xmlcharrefreplace, and backslashreplace. Their replacement output is
// byte-for-byte compatible with the reference runtime. RegisterError
// overwrites by name and returns the previous binding.
package codecs

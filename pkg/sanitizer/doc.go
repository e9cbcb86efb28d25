// Package sanitizer guards every write path into the database. It provides
// HTML sanitization for untrusted strings, a deep traversal that sanitizes
// arbitrary decoded JSON payloads, and small scalar validators used when
// shaping documents.
//
// All functions are pure and idempotent - sanitizing already-sanitized output
// yields the same output, so update-then-resubmit flows are safe. Invalid
// input is handled gracefully, typically by stripping or dropping rather than
// returning errors.
//
// Two sanitization strengths exist:
//   - Strict: every tag and attribute removed, plain text out.
//   - Rich: a conservative allowlist of structural/formatting tags, with
//     anchors restricted to safe URL schemes and hardened rel/target.
//
// The deep sanitizer applies Strict to every string it can reach; only keys
// explicitly named in a RichKeys set receive the Rich rule.
package sanitizer

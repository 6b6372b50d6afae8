// Package translate turns hadith batches into model prompts, submits
// them to a generative AI service, and parses the replies back into
// per-hadith translations. Providers share a common interface so the
// rest of the application never talks to an SDK directly.
package translate

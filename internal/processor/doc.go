// Package processor contains the core logic of a translation job. It
// chunks the input collection, submits each chunk to the configured
// provider, persists and combines the replies, retries hadiths that
// came back untranslated, and writes the final artifact. This package
// serves as the main coordinator between all other components.
package processor

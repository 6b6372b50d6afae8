package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"codeberg.org/snonux/hadithtrans/internal/batch"
	"codeberg.org/snonux/hadithtrans/internal/hadith"
	"codeberg.org/snonux/hadithtrans/internal/logging"
	"codeberg.org/snonux/hadithtrans/internal/translate"
)

// FinalFile is the name of the combined output artifact.
const FinalFile = "final_translations.json"

// Options configures a Processor.
type Options struct {
	Provider  translate.Provider
	Store     *batch.Store
	Language  string
	ChunkSize int       // 0 means batch.DefaultChunkSize
	Pacer     Pacer     // nil means FixedDelay(DefaultDelay)
	Out       io.Writer // nil means os.Stdout
}

// Processor handles the main translation job logic
type Processor struct {
	provider  translate.Provider
	store     *batch.Store
	language  string
	key       string
	chunkSize int
	pacer     Pacer
	out       io.Writer
	logger    zerolog.Logger
	printer   *message.Printer
}

// New creates a job processor
func New(opts Options) *Processor {
	p := &Processor{
		provider:  opts.Provider,
		store:     opts.Store,
		language:  opts.Language,
		key:       hadith.LanguageKey(opts.Language),
		chunkSize: opts.ChunkSize,
		pacer:     opts.Pacer,
		out:       opts.Out,
		logger:    logging.Component("processor"),
		printer:   message.NewPrinter(language.English),
	}
	if p.chunkSize <= 0 {
		p.chunkSize = batch.DefaultChunkSize
	}
	if p.pacer == nil {
		p.pacer = FixedDelay(DefaultDelay)
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	return p
}

// chunkResult is the outcome of one submitted chunk.
type chunkResult struct {
	seq          int
	translations []hadith.Translation
	file         string
	err          error
}

// passResult accumulates a full pass over a record set.
type passResult struct {
	translations []hadith.Translation
	files        []string
	failed       int
}

// Run executes the whole job for records and writes the final artifact
// to finalPath. Chunks that fail are skipped; their hadiths get one
// more chance in the retry pass before the final artifact is written.
func (p *Processor) Run(ctx context.Context, records []hadith.Record, finalPath string) error {
	fmt.Fprintf(p.out, "Translating %s hadiths to %s using %s\n",
		p.printer.Sprintf("%d", len(records)), p.language, p.provider.Name())

	first := p.translatePass(ctx, records, p.chunkSize, "Translating batches")

	fmt.Fprintf(p.out, "Combining batches...\n")
	combined := batch.Combine(first.files, batch.TrimShortTail(p.chunkSize))
	firstCount := len(combined)

	fmt.Fprintf(p.out, "Checking for missing hadiths...\n")
	missing := batch.Missing(records, combined)

	recovered := 0
	retryFailed := 0
	if len(missing) > 0 {
		size := batch.DefaultChunkSize
		if len(missing) < batch.DefaultChunkSize {
			size = batch.RetryChunkSize
		}
		fmt.Fprintf(p.out, "Found %d missing hadiths, retrying in batches of %d...\n", len(missing), size)

		retry := p.translatePass(ctx, missing, size, "Retrying missing")
		combined = append(combined, retry.translations...)
		recovered = len(retry.translations)
		retryFailed = retry.failed
	}

	if combined == nil {
		combined = []hadith.Translation{}
	}
	data, err := hadith.MarshalIndent(combined)
	if err != nil {
		return fmt.Errorf("failed to encode final translations: %w", err)
	}
	if err := os.WriteFile(finalPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", finalPath, err)
	}

	fmt.Fprintf(p.out, "\n=== Translation Summary ===\n")
	fmt.Fprintf(p.out, "Total hadiths: %s\n", p.printer.Sprintf("%d", len(records)))
	fmt.Fprintf(p.out, "Translated in first pass: %s\n", p.printer.Sprintf("%d", firstCount))
	if len(missing) > 0 {
		fmt.Fprintf(p.out, "Recovered in retry pass: %s of %s\n",
			p.printer.Sprintf("%d", recovered), p.printer.Sprintf("%d", len(missing)))
	}
	if failed := first.failed + retryFailed; failed > 0 {
		fmt.Fprintf(p.out, "Failed batches: %d\n", failed)
	}
	fmt.Fprintf(p.out, "Final translations: %s\n", p.printer.Sprintf("%d", len(combined)))
	fmt.Fprintf(p.out, "Saved to: %s\n", finalPath)
	fmt.Fprintf(p.out, "===========================\n")

	return nil
}

// translatePass submits records in chunks of size, persisting every
// successful chunk, and returns what it translated along with the
// files it wrote. Failures are counted, not returned.
func (p *Processor) translatePass(ctx context.Context, records []hadith.Record, size int, desc string) passResult {
	chunks := batch.Split(records, size)

	bar := progressbar.NewOptions(len(chunks),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	var res passResult
	for _, chunk := range chunks {
		out := p.processChunk(ctx, chunk)
		if out.err != nil {
			p.logger.Warn().Int("batch", out.seq).Err(out.err).Msg("batch failed")
			res.failed++
			bar.Add(1)
			continue
		}

		p.logger.Debug().Int("batch", out.seq).
			Int("translations", len(out.translations)).
			Str("file", out.file).
			Msg("batch saved")
		res.translations = append(res.translations, out.translations...)
		res.files = append(res.files, out.file)
		bar.Add(1)
		p.pacer.Pause()
	}
	bar.Finish()
	fmt.Fprintln(p.out)

	return res
}

// processChunk submits one chunk and persists its reply. The sequence
// number is only consumed once the chunk makes it to disk.
func (p *Processor) processChunk(ctx context.Context, records []hadith.Record) chunkResult {
	res := chunkResult{seq: p.store.NextSeq()}

	prompt := translate.BuildPrompt(records, p.language)
	reply, err := p.provider.Translate(ctx, prompt)
	if err != nil {
		res.err = fmt.Errorf("translation request failed: %w", err)
		return res
	}

	res.translations = translate.ParseReply(reply, p.key)
	file, err := p.store.WriteChunk(res.translations)
	if err != nil {
		res.err = fmt.Errorf("failed to save batch: %w", err)
		res.translations = nil
		return res
	}
	res.file = file
	return res
}

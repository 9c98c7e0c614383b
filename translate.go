package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bregydoc/gtranslate"
)

// translateFunc translates text from one language code to another.
type translateFunc func(text, from, to string) (string, error)

func googleTranslate(text, from, to string) (string, error) {
	return gtranslate.TranslateWithParams(
		text,
		gtranslate.TranslationParams{
			From: from,
			To:   to,
		},
	)
}

var errNoTargetLanguage = errors.New("target language not set and not found in catalog header")

// prefillOptions controls machine translation of untranslated entries.
type prefillOptions struct {
	SourceLang string
	TargetLang string
	Delay      time.Duration
	Translate  translateFunc
	Progress   io.Writer
	Warnings   io.Writer
}

// prefillTranslations returns a copy of records where every empty msgstr
// has been machine translated. Entries that fail to translate stay empty.
// The loop stops early when the process is interrupted.
func prefillTranslations(records []Record, path string, opts prefillOptions) ([]Record, int) {
	out := make([]Record, len(records))
	copy(out, records)

	var pending []int
	for i, r := range out {
		if r.MsgID != "" && r.MsgStr == "" {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return out, 0
	}

	translate := opts.Translate
	if translate == nil {
		translate = googleTranslate
	}
	warnings := opts.Warnings
	if warnings == nil {
		warnings = io.Discard
	}

	bar := newProgressBar(opts.Progress, len(pending), path)
	translatedCount := 0
	for n, i := range pending {
		if interrupted.Load() {
			break
		}

		translated, err := translate(out[i].MsgID, opts.SourceLang, opts.TargetLang)
		if err != nil {
			fmt.Fprintf(warnings, "\nWarning: Translation failed for '%s': %v\n", out[i].MsgID, err)
			bar.Add(1)
			continue
		}

		out[i] = newRecord(out[i].MsgID, translated)
		translatedCount++
		bar.Add(1)

		// Rate limiting
		if !interrupted.Load() && n < len(pending)-1 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	return out, translatedCount
}

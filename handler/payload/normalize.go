package payload

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/inkpress/database"
)

// Timestamp string layouts tried in order. ISO-8601 shapes come first, then
// the RFC-2822 family, then the loose date-only forms older clients send.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseTimestamp coerces a raw JSON value into a timestamp. It accepts
// numeric epochs (values at or above 1e12 are milliseconds, lower values are
// seconds) and the string layouts above. Anything empty, absent, or
// unparseable degrades to nil rather than failing, which reads as "draft"
// when applied to a publish date.
func ParseTimestamp(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	switch v := value.(type) {
	case float64:
		var millis int64

		if v >= 1e12 {
			millis = int64(v)
		} else {
			millis = int64(v * 1000)
		}

		ts := time.UnixMilli(millis).UTC()

		return &ts
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}

		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, trimmed); err == nil {
				utc := ts.UTC()

				return &utc
			}
		}

		return nil
	}

	return nil
}

// ParseOptionalString coerces a raw JSON value into a trimmed string.
// Null, absence, and whitespace-only input all collapse to nil; scalar
// non-strings are stringified the way loose clients expect.
func ParseOptionalString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	var text string

	switch v := value.(type) {
	case nil:
		return nil
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		text = strconv.FormatBool(v)
	default:
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	return &text
}

type rawBlock struct {
	SortOrder json.RawMessage `json:"sortOrder"`
	Order     json.RawMessage `json:"order"`
	Type      json.RawMessage `json:"type"`
	Text      json.RawMessage `json:"text"`
	ImageURL  json.RawMessage `json:"imageUrl"`
}

// NormalizeBlocks coerces a raw JSON value into an ordered block list.
// Non-array input yields an empty list. Elements with a type outside the
// closed variant set, or whose sort order does not coerce to a finite
// number, are dropped. The legacy "order" key still works as a fallback for
// "sortOrder". The result is sorted ascending by sort order, stable for
// ties.
func NormalizeBlocks(raw json.RawMessage) []database.BlockAttrs {
	if len(raw) == 0 {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	type candidate struct {
		sortOrder float64
		attrs     database.BlockAttrs
	}

	candidates := make([]candidate, 0, len(elements))

	for _, element := range elements {
		var block rawBlock
		if err := json.Unmarshal(element, &block); err != nil {
			continue
		}

		blockType := ParseOptionalString(block.Type)
		if blockType == nil || !database.IsValidBlockType(*blockType) {
			continue
		}

		sortOrder, ok := numberFrom(block.SortOrder, block.Order)
		if !ok {
			continue
		}

		candidates = append(candidates, candidate{
			sortOrder: sortOrder,
			attrs: database.BlockAttrs{
				SortOrder: int(sortOrder),
				Type:      *blockType,
				Text:      ParseOptionalString(block.Text),
				ImageURL:  ParseOptionalString(block.ImageURL),
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sortOrder < candidates[j].sortOrder
	})

	blocks := make([]database.BlockAttrs, 0, len(candidates))
	for _, item := range candidates {
		blocks = append(blocks, item.attrs)
	}

	return blocks
}

// numberFrom applies loose numeric coercion to the first present value,
// defaulting to 0 when both are null or absent. It reports false for values
// that do not coerce to a finite number.
func numberFrom(raws ...json.RawMessage) (float64, bool) {
	for _, raw := range raws {
		if len(raw) == 0 {
			continue
		}

		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return 0, false
		}

		switch v := value.(type) {
		case nil:
			continue
		case float64:
			return v, !math.IsInf(v, 0) && !math.IsNaN(v)
		case bool:
			if v {
				return 1, true
			}

			return 0, true
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return 0, true
			}

			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil || math.IsInf(parsed, 0) {
				return 0, false
			}

			return parsed, true
		default:
			return 0, false
		}
	}

	return 0, true
}

package journal

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const linePrefix = "[verbose]"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Journal.
type Options struct {
	GameID string
	Clock  Clock
}

// Journal writes one line per game event. A nil Journal discards everything.
type Journal struct {
	mu     sync.Mutex
	w      io.Writer
	gameID string
	clock  Clock
}

// New creates a journal writing to w. A nil writer yields a nil journal.
func New(w io.Writer, opts Options) *Journal {
	if w == nil {
		return nil
	}
	gameID := opts.GameID
	if gameID == "" {
		gameID = NewGameID()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return &Journal{w: w, gameID: gameID, clock: clock}
}

// NewGameID mints an identifier for a carnival run.
func NewGameID() string {
	return uuid.NewString()
}

// GameID returns the id stamped on every line.
func (j *Journal) GameID() string {
	if j == nil {
		return ""
	}
	return j.gameID
}

// Event writes an event with alternating key/value pairs.
func (j *Journal) Event(name string, kv ...any) {
	if j == nil {
		return
	}
	var builder strings.Builder
	builder.WriteString(linePrefix)
	builder.WriteByte(' ')
	builder.WriteString(j.clock.Now().UTC().Format(time.RFC3339))
	builder.WriteString(" game=")
	builder.WriteString(j.gameID)
	builder.WriteByte(' ')
	builder.WriteString(name)
	for _, field := range pairs(kv) {
		builder.WriteByte(' ')
		builder.WriteString(field)
	}
	builder.WriteByte('\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	_, _ = io.WriteString(j.w, builder.String())
}

// Fields writes an event from a map, with keys sorted.
func (j *Journal) Fields(name string, fields map[string]any) {
	if j == nil {
		return
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	kv := make([]any, 0, len(fields)*2)
	for _, key := range keys {
		kv = append(kv, key, fields[key])
	}
	j.Event(name, kv...)
}

// pairs renders key=value fields; a trailing key without value gets "?".
func pairs(kv []any) []string {
	fields := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		value := "?"
		if i+1 < len(kv) {
			value = formatValue(kv[i+1])
		}
		fields = append(fields, key+"="+value)
	}
	return fields
}

func formatValue(value any) string {
	var text string
	switch typed := value.(type) {
	case nil:
		return "-"
	case error:
		text = typed.Error()
	case fmt.Stringer:
		text = typed.String()
	default:
		text = fmt.Sprint(typed)
	}
	if text == "" {
		return `""`
	}
	if strings.ContainsAny(text, " \t\n\"=") {
		return strconv.Quote(text)
	}
	return text
}

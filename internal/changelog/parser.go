package changelog

import (
	"regexp"
	"strings"

	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/model"
)

// Delimiter nonces for the raw log blob. Long descriptive tokens that
// never collide with real commit text, safe against multi-line bodies.
const (
	EntryDelimiter = "===SHIPLOG=COMMIT=ENTRY=DELIMITER==="
	FieldDelimiter = "===SHIPLOG=COMMIT=FIELD=DELIMITER==="
)

// LogFormat is the git pretty-format template producing five fields per
// entry: full hash, short hash, title line, body text, committer identity.
const LogFormat = "%H" + FieldDelimiter +
	"%h" + FieldDelimiter +
	"%s" + FieldDelimiter +
	"%b" + FieldDelimiter +
	"%cn" + EntryDelimiter

const fieldsPerEntry = 5

// titlePattern is the conventional commit title grammar:
// type, optional (scope), ": ", message, optional contributor and PR
// annotation groups at the end of the line.
var titlePattern = regexp.MustCompile(
	`^(?P<type>\w+)(?:\((?P<scope>[^)]+)\))?: (?P<message>.+?)(?: \((?P<users>@[^)]+)\))?(?: \((?P<prs>#[^)]+)\))?$`,
)

// Parser turns a raw delimited log blob into commit records.
type Parser struct {
	botMarker string
	logger    logze.Logger
}

// NewParser creates a parser. Committer identities containing botMarker
// (case-insensitive) are excluded from the contributor side channel.
func NewParser(botMarker string) *Parser {
	return &Parser{
		botMarker: strings.ToLower(botMarker),
		logger:    logze.With("module", "changelog"),
	}
}

// Parse splits the blob into entries and extracts structured records.
// Entries whose title does not match the conventional commit grammar, or
// whose type is outside the recognized vocabulary, are dropped silently:
// that is a quality filter, not an error path. The dropped count is kept
// for diagnostics.
func (p *Parser) Parse(blob string) model.ParseResult {
	var result model.ParseResult

	seenCommitters := make(map[string]bool)

	for _, entry := range strings.Split(blob, EntryDelimiter) {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		fields := strings.SplitN(entry, FieldDelimiter, fieldsPerEntry)
		if len(fields) != fieldsPerEntry {
			result.Dropped++
			continue
		}

		fullHash := strings.TrimSpace(fields[0])
		shortHash := strings.TrimSpace(fields[1])
		title := strings.TrimSpace(fields[2])
		body := fields[3]
		committer := strings.TrimSpace(fields[4])

		if committer != "" && !strings.Contains(strings.ToLower(committer), p.botMarker) && !seenCommitters[committer] {
			seenCommitters[committer] = true
			result.Committers = append(result.Committers, committer)
		}

		record := p.parseTitle(title)
		if record == nil {
			result.Dropped++
			continue
		}

		record.Hashes = []model.Hash{{Short: shortHash, Full: fullHash}}
		record.Body = body
		result.Records = append(result.Records, record)
	}

	if result.Dropped > 0 {
		p.logger.Debug("dropped entries with unrecognized titles", "count", result.Dropped)
	}

	return result
}

func (p *Parser) parseTitle(title string) *model.CommitRecord {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return nil
	}

	record := &model.CommitRecord{}
	for i, name := range titlePattern.SubexpNames() {
		switch name {
		case "type":
			record.Type = m[i]
		case "scope":
			record.Scope = m[i]
		case "message":
			record.Message = m[i]
		case "users":
			record.Usernames = splitGroup(m[i])
		case "prs":
			record.PRs = splitGroup(m[i])
		}
	}

	if !isKnownType(record.Type) || record.Message == "" {
		return nil
	}

	return record
}

func splitGroup(group string) []string {
	if group == "" {
		return nil
	}
	return strings.Split(group, ", ")
}

package app

import (
	"net/url"
	"strings"
)

const (
	preparedBinaryParam  = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

// snapshotDSN is the postgres connection string used for snapshot storage.
// Both URL and key=value forms are accepted.
type snapshotDSN struct {
	conn   string
	dbName string
}

func parseSnapshotDSN(raw string, disablePreparedBinary bool) snapshotDSN {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err == nil && parsed.Scheme != "" {
		if disablePreparedBinary {
			query := parsed.Query()
			if query.Get(preparedBinaryParam) == "" {
				query.Set(preparedBinaryParam, "yes")
				parsed.RawQuery = query.Encode()
			}
		}
		return snapshotDSN{
			conn:   parsed.String(),
			dbName: strings.TrimPrefix(parsed.Path, "/"),
		}
	}

	dsn := snapshotDSN{conn: raw}
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if ok && key == "dbname" {
			dsn.dbName = strings.Trim(value, `"'`)
		}
	}
	if disablePreparedBinary && raw != "" && !strings.Contains(raw, preparedBinaryParam+"=") {
		dsn.conn = raw + " " + preparedBinaryParam + "=yes"
	}
	return dsn
}

// traceQuery collapses whitespace so multi-row inserts stay readable in
// spans, and caps the statement length.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

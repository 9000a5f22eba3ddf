// Command dnsdig sends a single DNS query over UDP and prints the
// decoded answers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jroosing/dnsdig/internal/dns"
	"github.com/jroosing/dnsdig/internal/logging"
	"github.com/jroosing/dnsdig/internal/resolver"
)

func main() {
	var (
		servers   = flag.String("server", "8.8.8.8:53", "DNS servers, comma-separated HOST:PORT")
		name      = flag.String("name", "example.com", "Query name")
		qtypeFlag = flag.String("qtype", "A", "Query type (A, AAAA, CNAME, or numeric)")
		timeout   = flag.Duration("timeout", 2*time.Second, "Timeout")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		logFormat = flag.String("log-format", "text", "Log format (text or json)")
		quiet     = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	logger := logging.Configure(*logLevel, *logFormat)

	qtype, err := parseQueryType(*qtypeFlag)
	if err != nil {
		logger.Error("invalid qtype", slog.String("qtype", *qtypeFlag))
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := resolver.NewClient(strings.Split(*servers, ","), *timeout)
	records, err := client.Lookup(ctx, *name, qtype)
	if err != nil {
		if !*quiet {
			var srvErr *dns.ServerError
			if errors.As(err, &srvErr) {
				logger.Error("server error",
					slog.Int("code", int(srvErr.Code)),
					slog.String("label", dns.RCodeLabel(srvErr.Code)))
			} else {
				logger.Error("query failed", slog.String("error", err.Error()))
			}
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	logger.Debug("query done",
		slog.String("name", *name),
		slog.Int("answers", len(records)))

	rows := make([]string, 0, len(records))
	for _, rr := range records {
		rows = append(rows, formatRecord(rr))
	}
	sort.Strings(rows)
	for _, s := range rows {
		fmt.Println(s)
	}
}

// parseQueryType accepts the record-type mnemonics this client decodes,
// or any numeric type code.
func parseQueryType(s string) (uint16, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return uint16(dns.TypeA), nil
	case "AAAA":
		return uint16(dns.TypeAAAA), nil
	case "CNAME":
		return uint16(dns.TypeCNAME), nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

func formatRecord(rr dns.Record) string {
	name := rr.Name
	if name == "" {
		name = "."
	}
	switch dns.RecordType(rr.Type) {
	case dns.TypeA:
		return fmt.Sprintf("%s %d IN A %s", name, rr.TTL, rr.Data)
	case dns.TypeAAAA:
		return fmt.Sprintf("%s %d IN AAAA %s", name, rr.TTL, rr.Data)
	case dns.TypeCNAME:
		return fmt.Sprintf("%s %d IN CNAME %s", name, rr.TTL, rr.Data)
	}
	return fmt.Sprintf("%s %d IN TYPE%d (unparsed)", name, rr.TTL, rr.Type)
}

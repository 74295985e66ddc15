package cmd

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dariyanisacc/healthcare-sql-project/internal/config"
)

const copyBatchSize = 1000

type loadFlags struct {
	host           string
	port           int
	user           string
	password       string
	dbname         string
	dataDir        string
	retries        int
	nonInteractive bool
}

var ldFlags loadFlags

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create the clinical schema and bulk-load the generated CSVs into PostgreSQL",
	Long: `Drops and recreates the clinical schema, then loads every generated CSV
with COPY in foreign-key dependency order. A reload is always a clean
slate; partial loads from a failed run never survive.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	defaults := config.Load()
	loadCmd.Flags().StringVar(&ldFlags.host, "host", defaults.DBHost, "PostgreSQL host (or PGHOST env)")
	loadCmd.Flags().IntVar(&ldFlags.port, "port", defaults.DBPort, "PostgreSQL port (or PGPORT env)")
	loadCmd.Flags().StringVarP(&ldFlags.user, "user", "U", defaults.DBUser, "PostgreSQL username (or PGUSER env)")
	loadCmd.Flags().StringVarP(&ldFlags.dbname, "dbname", "d", defaults.DBName, "Target database (or PGDATABASE env)")
	loadCmd.Flags().StringVar(&ldFlags.dataDir, "data-dir", defaults.OutDir, "Directory containing the generated CSVs (or GEN_OUT_DIR env)")
	loadCmd.Flags().IntVar(&ldFlags.retries, "retries", 3, "Max retry attempts for transient connection errors")
	loadCmd.Flags().BoolVar(&ldFlags.nonInteractive, "non-interactive", false, "Never prompt; fail if the password is missing and required")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ldFlags.password = config.Load().DBPassword
	if ldFlags.password == "" && !ldFlags.nonInteractive {
		ldFlags.password = promptPassword(fmt.Sprintf("Password for %s@%s: ", ldFlags.user, ldFlags.host))
	}

	ctx := context.Background()
	start := time.Now()

	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	conn, err := connectWithRetry(ctx, buildConnStr(ldFlags.host, ldFlags.port, ldFlags.user, ldFlags.password, ldFlags.dbname))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", ldFlags.host, err)
	}
	defer conn.Close(ctx)

	logger.Info().Str("db", ldFlags.dbname).Msg("creating schema")
	for _, stmt := range schemaDDL {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	total := int64(0)
	for _, spec := range tableSpecs {
		path := filepath.Join(ldFlags.dataDir, spec.file)
		n, err := loadTable(ctx, conn, spec, path)
		if err != nil {
			return fmt.Errorf("load %s: %w", spec.name, err)
		}
		logger.Info().Str("table", spec.name).Int64("rows", n).Msg("loaded")
		total += n
	}

	fmt.Printf("\nLoaded %d rows into %s in %.1fs\n", total, ldFlags.dbname, time.Since(start).Seconds())
	return nil
}

// loadTable streams one CSV into its table with COPY, in batches so a huge
// vitals file never sits in memory as SQL values all at once.
func loadTable(ctx context.Context, conn *pgx.Conn, spec tableSpec, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(spec.columns) {
		return 0, fmt.Errorf("%s has %d columns, expected %d", path, len(header), len(spec.columns))
	}

	var total int64
	batch := make([][]any, 0, copyBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := conn.CopyFrom(ctx, pgx.Identifier{spec.name}, spec.columns, pgx.CopyFromRows(batch))
		if err != nil {
			return err
		}
		total += n
		batch = batch[:0]
		return nil
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read row: %w", err)
		}
		row := make([]any, len(rec))
		for i, field := range rec {
			v, err := convertField(field, spec.kinds[i])
			if err != nil {
				return total, fmt.Errorf("column %s: %w", spec.columns[i], err)
			}
			row[i] = v
		}
		batch = append(batch, row)
		if len(batch) == copyBatchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	return total, flush()
}

func convertField(field string, k colKind) (any, error) {
	switch k {
	case colText:
		return field, nil
	case colInt:
		return strconv.Atoi(field)
	case colIntNull:
		if field == "" {
			return nil, nil
		}
		return strconv.Atoi(field)
	case colFloat:
		return strconv.ParseFloat(field, 64)
	case colFloatNull:
		if field == "" {
			return nil, nil
		}
		return strconv.ParseFloat(field, 64)
	case colBool:
		return strconv.ParseBool(field)
	case colTime:
		return time.Parse("2006-01-02 15:04:05", field)
	case colTimeNull:
		if field == "" {
			return nil, nil
		}
		return time.Parse("2006-01-02 15:04:05", field)
	case colDate:
		return time.Parse("2006-01-02", field)
	}
	return nil, fmt.Errorf("unknown column kind %d", k)
}

// ensureDatabase creates the target database if it does not exist yet,
// connecting through the maintenance database.
func ensureDatabase(ctx context.Context) error {
	conn, err := connectWithRetry(ctx, buildConnStr(ldFlags.host, ldFlags.port, ldFlags.user, ldFlags.password, "postgres"))
	if err != nil {
		return fmt.Errorf("connect to maintenance db: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", ldFlags.dbname).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		return nil
	}
	logger.Info().Str("db", ldFlags.dbname).Msg("creating database")
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{ldFlags.dbname}.Sanitize()); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}

// --- Connection helpers ---

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}
	return string(pass)
}

func buildConnStr(host string, port int, user, password, db string) string {
	hostPort := host
	if port > 0 {
		hostPort = fmt.Sprintf("%s:%d", host, port)
	}
	u := &url.URL{
		Scheme:   "postgres",
		Host:     hostPort,
		Path:     "/" + db,
		RawQuery: "sslmode=prefer",
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func withRetry(ctx context.Context, maxAttempts int, label string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransientError(lastErr) {
			return lastErr
		}
		if attempt < maxAttempts {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			logger.Warn().Str("op", label).Int("attempt", attempt).
				Dur("backoff", backoff).Err(lastErr).Msg("transient error, retrying")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"broken pipe",
		"unexpected eof",
		"i/o timeout",
		"the database system is starting up",
		"too many connections",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

func connectWithRetry(ctx context.Context, connStr string) (*pgx.Conn, error) {
	var conn *pgx.Conn
	err := withRetry(ctx, ldFlags.retries, "connect", func() error {
		var err error
		conn, err = pgx.Connect(ctx, connStr)
		return err
	})
	return conn, err
}

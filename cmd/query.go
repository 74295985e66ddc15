package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/dariyanisacc/healthcare-sql-project/internal/config"
)

type namedQuery struct {
	title string
	sql   string
}

// cannedQueries are the demo analytics run before the REPL starts.
var cannedQueries = []namedQuery{
	{
		title: "Current census by unit",
		sql: `SELECT u.unit_name,
       count(e.encounter_id) AS patients,
       u.total_beds,
       round(100.0 * count(e.encounter_id) / u.total_beds, 1) AS occupancy_pct
FROM units u
LEFT JOIN encounters e
       ON e.current_unit_id = u.unit_id AND e.encounter_status = 'Active'
GROUP BY u.unit_id, u.unit_name, u.total_beds
ORDER BY patients DESC`,
	},
	{
		title: "Complex active cases (3+ diagnoses)",
		sql: `SELECT p.mrn,
       p.last_name || ', ' || p.first_name AS patient,
       u.unit_name,
       count(d.diagnosis_id) AS diagnoses
FROM encounters e
JOIN patients p ON p.patient_id = e.patient_id
JOIN units u ON u.unit_id = e.current_unit_id
JOIN diagnoses d ON d.encounter_id = e.encounter_id
WHERE e.encounter_status = 'Active'
GROUP BY p.mrn, patient, u.unit_name
HAVING count(d.diagnosis_id) >= 3
ORDER BY diagnoses DESC
LIMIT 15`,
	},
	{
		title: "Most recent critical lab results",
		sql: `SELECT l.encounter_id, l.test_name, l.result_value, l.result_unit,
       l.abnormal_flag, l.collected_date
FROM lab_results l
WHERE l.abnormal_flag IN ('Critical High', 'Critical Low')
ORDER BY l.collected_date DESC
LIMIT 20`,
	},
	{
		title: "Medication administration compliance",
		sql: `SELECT m.medication_name,
       count(*) AS scheduled,
       count(*) FILTER (WHERE ma.admin_status = 'Given') AS given,
       round(100.0 * count(*) FILTER (WHERE ma.admin_status = 'Given') / count(*), 1) AS compliance_pct
FROM medication_administrations ma
JOIN medications m ON m.medication_id = ma.medication_id
GROUP BY m.medication_name
HAVING count(*) >= 50
ORDER BY compliance_pct ASC
LIMIT 15`,
	},
	{
		title: "Average length of stay by primary diagnosis",
		sql: `SELECT d.icd10_code, d.diagnosis_description,
       count(*) AS encounters,
       round(avg(EXTRACT(EPOCH FROM e.discharge_date - e.admit_date) / 86400.0)::numeric, 2) AS avg_los_days
FROM encounters e
JOIN diagnoses d ON d.encounter_id = e.encounter_id AND d.diagnosis_type = 'Primary'
WHERE e.discharge_date IS NOT NULL
GROUP BY d.icd10_code, d.diagnosis_description
ORDER BY avg_los_days DESC
LIMIT 10`,
	},
}

type queryFlags struct {
	host           string
	port           int
	user           string
	dbname         string
	skipCanned     bool
	nonInteractive bool
}

var qFlags queryFlags

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the demo analytics against a loaded database, then open a SQL prompt",
	RunE:  runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	defaults := config.Load()
	queryCmd.Flags().StringVar(&qFlags.host, "host", defaults.DBHost, "PostgreSQL host (or PGHOST env)")
	queryCmd.Flags().IntVar(&qFlags.port, "port", defaults.DBPort, "PostgreSQL port (or PGPORT env)")
	queryCmd.Flags().StringVarP(&qFlags.user, "user", "U", defaults.DBUser, "PostgreSQL username (or PGUSER env)")
	queryCmd.Flags().StringVarP(&qFlags.dbname, "dbname", "d", defaults.DBName, "Target database (or PGDATABASE env)")
	queryCmd.Flags().BoolVar(&qFlags.skipCanned, "skip-demo", false, "Skip the demo queries and go straight to the prompt")
	queryCmd.Flags().BoolVar(&qFlags.nonInteractive, "non-interactive", false, "Run the demo queries and exit without a prompt")
}

func runQuery(cmd *cobra.Command, args []string) error {
	password := config.Load().DBPassword
	if password == "" && !qFlags.nonInteractive {
		password = promptPassword(fmt.Sprintf("Password for %s@%s: ", qFlags.user, qFlags.host))
	}

	ctx := context.Background()
	conn, err := connectWithRetry(ctx, buildConnStr(qFlags.host, qFlags.port, qFlags.user, password, qFlags.dbname))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", qFlags.host, err)
	}
	defer conn.Close(ctx)

	if !qFlags.skipCanned {
		for _, q := range cannedQueries {
			fmt.Printf("\n=== %s ===\n", q.title)
			if err := printQuery(ctx, conn, q.sql); err != nil {
				fmt.Printf("error: %v\n", err)
			}
		}
	}

	if qFlags.nonInteractive {
		return nil
	}
	return repl(ctx, conn)
}

// repl reads one statement per line. Query errors print and the prompt
// continues; only exit/quit (or EOF) ends the session.
func repl(ctx context.Context, conn *pgx.Conn) error {
	fmt.Println("\nEnter SQL (exit or quit to leave):")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("sql> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(strings.TrimSuffix(line, ";")) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := printQuery(ctx, conn, line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func printQuery(ctx context.Context, conn *pgx.Conn, sql string) error {
	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return err
	}
	defer rows.Close()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	descs := rows.FieldDescriptions()
	headers := make([]string, len(descs))
	for i, d := range descs {
		headers[i] = d.Name
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	count := 0
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return err
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = formatValue(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("(%d rows)\n", count)
	return nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

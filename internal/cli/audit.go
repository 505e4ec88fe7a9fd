package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var (
	// Audit flags
	auditLimit  int
	auditEntity string
	auditType   string
	auditID     int64
	auditPrune  int
)

var auditEventTypes = map[string]entities.AuditEventType{
	string(entities.AuditEventCreate): entities.AuditEventCreate,
	string(entities.AuditEventUpdate): entities.AuditEventUpdate,
	string(entities.AuditEventDelete): entities.AuditEventDelete,
	string(entities.AuditEventSeed):   entities.AuditEventSeed,
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent catalog changes",
	Long: `Show the most recent create, update and delete operations.

Examples:
  gamesreviewer audit --limit 50
  gamesreviewer audit --entity game --id 3   # history of one game
  gamesreviewer audit --type delete          # only deletions
  gamesreviewer audit --prune 30             # delete events older than 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		if cmd.Flags().Changed("prune") {
			days := auditPrune
			if days <= 0 {
				days = a.cfg.Audit.RetentionDays
			}
			if days <= 0 {
				return fmt.Errorf("retention must be a positive number of days, got %d", days)
			}
			deleted, err := a.audit.DeleteOldEvents(time.Duration(days) * 24 * time.Hour)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %d audit events older than %d days\n", deleted, days)
			return nil
		}

		var events []entities.AuditEvent
		var total int64
		switch {
		case auditType != "":
			eventType, ok := auditEventTypes[auditType]
			if !ok {
				return fmt.Errorf("unknown event type %q (want create, update, delete or seed)", auditType)
			}
			if auditEntity != "" || auditID > 0 {
				return fmt.Errorf("--type cannot be combined with --entity or --id")
			}
			events, total, err = a.audit.GetEventsByType(eventType, auditLimit, 0)
		case auditID > 0:
			if auditEntity == "" {
				return fmt.Errorf("--id requires --entity")
			}
			events, err = a.audit.History(auditEntity, auditID)
			total = int64(len(events))
		default:
			events, total, err = a.audit.GetEvents(auditEntity, auditLimit, 0)
		}
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(out, "No audit events")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		row(w, "TIME", "EVENT", "ENTITY", "ID", "STATUS", "DESCRIPTION")
		for _, e := range events {
			entityID := "-"
			if e.EntityID != nil {
				entityID = strconv.FormatInt(*e.EntityID, 10)
			}
			description := e.Description
			if e.Status == entities.AuditStatusFailed && e.ErrorMsg != "" {
				description += " (" + e.ErrorMsg + ")"
			}
			row(w, e.CreatedAt.Format("2006-01-02 15:04:05"), string(e.EventType), e.EntityType, entityID, string(e.Status), description)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nShowing %d of %d events\n", len(events), total)
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVar(&auditLimit, "limit", 20, "Number of events to show")
	auditCmd.Flags().StringVar(&auditEntity, "entity", "", "Only events of this entity type (game, genre, company, media_outlet, review, system_requirement)")
	auditCmd.Flags().StringVar(&auditType, "type", "", "Only events of this kind: create, update, delete or seed")
	auditCmd.Flags().Int64Var(&auditID, "id", 0, "With --entity, show the full history of one record")
	auditCmd.Flags().IntVar(&auditPrune, "prune", 0, "Delete events older than this many days (0 uses AUDIT_RETENTION_DAYS)")
	rootCmd.AddCommand(auditCmd)
}

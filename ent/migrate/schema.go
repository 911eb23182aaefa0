// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true, Size: 80},
		{Name: "alertname", Type: field.TypeString, Size: 255},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "warning", "info"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"firing", "resolved"}},
		{Name: "labels", Type: field.TypeJSON},
		{Name: "annotations", Type: field.TypeJSON, Nullable: true},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "generator_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_incidents_alerts",
				Columns:    []*schema.Column{AlertsColumns[13]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1]},
			},
			{
				Name:    "alert_starts_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7]},
			},
			{
				Name:    "alert_incident_id",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[13]},
			},
			{
				Name:    "alert_status_starts_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4], AlertsColumns[7]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "analyzing", "resolved", "closed"}, Default: "open"},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "warning", "info"}},
		{Name: "primary_alert_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "affected_services", Type: field.TypeJSON},
		{Name: "affected_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "rca_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[2]},
			},
			{
				Name:    "incident_severity",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[3]},
			},
			{
				Name:    "incident_started_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[8]},
			},
			{
				Name:    "incident_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[2], IncidentsColumns[8]},
			},
		},
	}
	// RcaReportsColumns holds the columns for the "rca_reports" table.
	RcaReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "root_cause", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence_score", Type: field.TypeInt},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "timeline", Type: field.TypeJSON},
		{Name: "evidence", Type: field.TypeJSON},
		{Name: "remediation_steps", Type: field.TypeJSON},
		{Name: "analysis_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "complete", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString, Unique: true},
	}
	// RcaReportsTable holds the schema information for the "rca_reports" table.
	RcaReportsTable = &schema.Table{
		Name:       "rca_reports",
		Columns:    RcaReportsColumns,
		PrimaryKey: []*schema.Column{RcaReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rca_reports_incidents_rca_report",
				Columns:    []*schema.Column{RcaReportsColumns[14]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rcareport_status",
				Unique:  false,
				Columns: []*schema.Column{RcaReportsColumns[8]},
			},
			{
				Name:    "rcareport_completed_at",
				Unique:  false,
				Columns: []*schema.Column{RcaReportsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		IncidentsTable,
		RcaReportsTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = IncidentsTable
	RcaReportsTable.ForeignKeys[0].RefTable = IncidentsTable
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/rcareport"
	"github.com/incident-ops/rcad/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescFingerprint is the schema descriptor for fingerprint field.
	alertDescFingerprint := alertFields[1].Descriptor()
	// alert.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	alert.FingerprintValidator = alertDescFingerprint.Validators[0].(func(string) error)
	// alertDescAlertname is the schema descriptor for alertname field.
	alertDescAlertname := alertFields[2].Descriptor()
	// alert.AlertnameValidator is a validator for the "alertname" field. It is called by the builders before save.
	alert.AlertnameValidator = alertDescAlertname.Validators[0].(func(string) error)
	// alertDescReceivedAt is the schema descriptor for received_at field.
	alertDescReceivedAt := alertFields[11].Descriptor()
	// alert.DefaultReceivedAt holds the default value on creation for the received_at field.
	alert.DefaultReceivedAt = alertDescReceivedAt.Default.(func() time.Time)
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[12].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	// alertDescUpdatedAt is the schema descriptor for updated_at field.
	alertDescUpdatedAt := alertFields[13].Descriptor()
	// alert.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alert.DefaultUpdatedAt = alertDescUpdatedAt.Default.(func() time.Time)
	// alert.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alert.UpdateDefaultUpdatedAt = alertDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescTitle is the schema descriptor for title field.
	incidentDescTitle := incidentFields[1].Descriptor()
	// incident.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	incident.TitleValidator = incidentDescTitle.Validators[0].(func(string) error)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[11].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[12].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	rcareportFields := schema.RCAReport{}.Fields()
	_ = rcareportFields
	// rcareportDescConfidenceScore is the schema descriptor for confidence_score field.
	rcareportDescConfidenceScore := rcareportFields[3].Descriptor()
	// rcareport.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	rcareport.ConfidenceScoreValidator = func() func(int) error {
		validators := rcareportDescConfidenceScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence_score int) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// rcareportDescCreatedAt is the schema descriptor for created_at field.
	rcareportDescCreatedAt := rcareportFields[13].Descriptor()
	// rcareport.DefaultCreatedAt holds the default value on creation for the created_at field.
	rcareport.DefaultCreatedAt = rcareportDescCreatedAt.Default.(func() time.Time)
	// rcareportDescUpdatedAt is the schema descriptor for updated_at field.
	rcareportDescUpdatedAt := rcareportFields[14].Descriptor()
	// rcareport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rcareport.DefaultUpdatedAt = rcareportDescUpdatedAt.Default.(func() time.Time)
	// rcareport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rcareport.UpdateDefaultUpdatedAt = rcareportDescUpdatedAt.UpdateDefault.(func() time.Time)
}

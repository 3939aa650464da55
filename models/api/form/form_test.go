package formapimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"crewtime-backend/models"
)

func TestTemplateDataValidate(t *testing.T) {
	schema := json.RawMessage(`{"fields":[{"name":"odometer","type":"number"}]}`)

	t.Run(`valid template passes`, func(t *testing.T) {
		data := TemplateData{Name: "Vehicle inspection", Schema: schema}
		require.Nil(t, data.Validate())
	})

	t.Run(`name required`, func(t *testing.T) {
		data := TemplateData{Schema: schema}
		require.NotNil(t, data.Validate())
	})

	t.Run(`schema must be valid json`, func(t *testing.T) {
		data := TemplateData{Name: "Vehicle inspection", Schema: json.RawMessage(`{"fields":`)}
		require.NotNil(t, data.Validate())
		data.Schema = nil
		require.NotNil(t, data.Validate())
	})
}

func TestSubmissionDataValidate(t *testing.T) {
	t.Run(`valid submission passes`, func(t *testing.T) {
		data := SubmissionData{TemplateID: "tpl-1", Data: json.RawMessage(`{"odometer":120533}`)}
		require.Nil(t, data.Validate())
	})

	t.Run(`template id required`, func(t *testing.T) {
		data := SubmissionData{Data: json.RawMessage(`{}`)}
		require.NotNil(t, data.Validate())
	})

	t.Run(`data must be valid json`, func(t *testing.T) {
		data := SubmissionData{TemplateID: "tpl-1", Data: json.RawMessage(`odometer`)}
		require.NotNil(t, data.Validate())
	})
}

func TestApprovalDataValidate(t *testing.T) {
	t.Run(`approval without a comment passes`, func(t *testing.T) {
		data := ApprovalData{SubmissionID: "sub-1", Approved: true}
		require.Nil(t, data.Validate())
		require.Equal(t, models.FormStatusApproved, data.Status())
	})

	t.Run(`denial requires a comment`, func(t *testing.T) {
		data := ApprovalData{SubmissionID: "sub-1", Approved: false}
		require.NotNil(t, data.Validate())
		data.Comment = "odometer reading missing"
		require.Nil(t, data.Validate())
		require.Equal(t, models.FormStatusDenied, data.Status())
	})

	t.Run(`submission id required`, func(t *testing.T) {
		data := ApprovalData{Approved: true}
		require.NotNil(t, data.Validate())
	})
}

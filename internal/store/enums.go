package store

// Lead statuses live in internal/pipeline.

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

const (
	CampaignTypeEmail   = "email"
	CampaignTypeSocial  = "social"
	CampaignTypePPC     = "ppc"
	CampaignTypeContent = "content"
	CampaignTypeEvent   = "event"
)

// Task ENUMs
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

// Workflow ENUMs
const (
	WorkflowTriggerNewLead          = "new_lead"
	WorkflowTriggerLeadStatusChange = "lead_status_change"
	WorkflowTriggerScheduled        = "scheduled"
	WorkflowTriggerEmailOpened      = "email_opened"
	WorkflowTriggerFormSubmitted    = "form_submitted"
)

// Lead event types
const (
	LeadEventCreated       = "lead.created"
	LeadEventUpdated       = "lead.updated"
	LeadEventStatusChanged = "lead.status_changed"
	LeadEventDeleted       = "lead.deleted"
)

// CampaignStatuses lists campaign statuses in display order.
var CampaignStatuses = []string{CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted}

// CampaignTypes lists campaign types in display order.
var CampaignTypes = []string{CampaignTypeEmail, CampaignTypeSocial, CampaignTypePPC, CampaignTypeContent, CampaignTypeEvent}

// TaskPriorities lists task priorities from lowest to highest.
var TaskPriorities = []string{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}

// WorkflowTriggers lists workflow triggers in display order.
var WorkflowTriggers = []string{
	WorkflowTriggerNewLead,
	WorkflowTriggerLeadStatusChange,
	WorkflowTriggerScheduled,
	WorkflowTriggerEmailOpened,
	WorkflowTriggerFormSubmitted,
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// IsValidCampaignStatus reports whether s is a campaign_status token.
func IsValidCampaignStatus(s string) bool { return contains(CampaignStatuses, s) }

// IsValidCampaignType reports whether s is a campaign_type token.
func IsValidCampaignType(s string) bool { return contains(CampaignTypes, s) }

// IsValidTaskPriority reports whether s is a task_priority token.
func IsValidTaskPriority(s string) bool { return contains(TaskPriorities, s) }

// IsValidWorkflowTrigger reports whether s is a workflow_trigger token.
func IsValidWorkflowTrigger(s string) bool { return contains(WorkflowTriggers, s) }

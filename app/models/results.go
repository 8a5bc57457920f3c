package models

// InitializationResult summarizes one bulk-initialization run. A run where
// every enrollment already had a record (CreatedCount == 0) is a normal,
// informational outcome.
type InitializationResult struct {
	CreatedCount          int      `json:"created_count"`
	TransportCreatedCount int      `json:"transport_created_count"`
	SkippedEnrollmentIDs  []string `json:"skipped_enrollment_ids"`
	TotalRequested        int      `json:"total_requested"`
}

// Pagination carries the paging fields returned by list endpoints.
type Pagination struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalCount  int `json:"total_count"`
}

// BalanceScope filters store reads. BranchID comes from the tenant context;
// ClassID, SectionID and PeriodID are optional narrowing filters.
type BalanceScope struct {
	BranchID  string
	ClassID   string
	SectionID string
	PeriodID  string
}

// StatusCounts holds per-status record counts for one installment slot.
type StatusCounts struct {
	Pending int `json:"pending"`
	Partial int `json:"partial"`
	Paid    int `json:"paid"`
}

// FeeDashboardStats is the aggregation reporter output for a scope. All
// fields are zero when the scope matches no records.
type FeeDashboardStats struct {
	TotalBalances    int     `json:"total_balances"`
	TotalActualFee   float64 `json:"total_actual_fee"`
	TotalConcession  float64 `json:"total_concession"`
	TotalNetFee      float64 `json:"total_net_fee"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`

	Book  StatusCounts `json:"book"`
	Term1 StatusCounts `json:"term_1"`
	Term2 StatusCounts `json:"term_2"`
	Term3 StatusCounts `json:"term_3"`

	TransportBalances    int          `json:"transport_balances"`
	TransportPaid        float64      `json:"transport_paid"`
	TransportOutstanding float64      `json:"transport_outstanding"`
	TransportTerm1       StatusCounts `json:"transport_term_1"`
	TransportTerm2       StatusCounts `json:"transport_term_2"`
}

// EligibilityResult is the promotion gate output for one enrollment.
type EligibilityResult struct {
	EnrollmentID       string  `json:"enrollment_id"`
	StudentName        string  `json:"student_name"`
	TuitionPending     float64 `json:"tuition_pending"`
	BookPending        float64 `json:"book_pending"`
	TransportPending   float64 `json:"transport_pending"`
	TotalPendingAmount float64 `json:"total_pending_amount"`
	PendingFeeTypes    string  `json:"pending_fee_types"`
	IsPromotable       bool    `json:"is_promotable"`
}

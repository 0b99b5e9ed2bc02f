package admin

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	ReturnPending   = "Pending"
	ReturnApproved  = "Approved"
	ReturnRejected  = "Rejected"
	ReturnCompleted = "Completed"
)

var (
	ErrReturnNotFound = errors.New("return not found")
)

type Return struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	Customer     string `json:"customer"`
	Product      string `json:"product"`
	Reason       string `json:"reason"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	RequestDate  string `json:"requestDate"`
	ReturnDate   string `json:"returnDate,omitempty"`
	RefundAmount int64  `json:"refundAmount"`
	Notes        string `json:"notes"`
}

// Returns manages the return-request queue. It is the one admin dataset
// the console mutates, so access is mutex-guarded.
type Returns struct {
	mu   sync.Mutex
	list []Return
	now  func() time.Time
}

func NewReturns() *Returns {
	return &Returns{
		now: time.Now,
		list: []Return{
			{
				ID: "RET001", OrderID: "ORD001", Customer: "Priya Sharma",
				Product: "Royal Gold Necklace Set", Reason: "Size issue",
				Amount: 125000, Status: ReturnPending, RequestDate: "2024-01-16",
				RefundAmount: 125000, Notes: "Customer wants to exchange for smaller size",
			},
			{
				ID: "RET002", OrderID: "ORD002", Customer: "Rajesh Kumar",
				Product: "Diamond Studded Earrings", Reason: "Defective item",
				Amount: 75000, Status: ReturnApproved, RequestDate: "2024-01-15",
				ReturnDate: "2024-01-17", RefundAmount: 75000, Notes: "Manufacturing defect confirmed",
			},
			{
				ID: "RET003", OrderID: "ORD003", Customer: "Anita Gupta",
				Product: "Traditional Silver Bangles", Reason: "Changed mind",
				Amount: 35000, Status: ReturnRejected, RequestDate: "2024-01-14",
				RefundAmount: 0, Notes: "Return requested after 7-day window",
			},
			{
				ID: "RET004", OrderID: "ORD004", Customer: "Vikram Singh",
				Product: "Emerald Gold Ring", Reason: "Wrong size",
				Amount: 95000, Status: ReturnCompleted, RequestDate: "2024-01-13",
				ReturnDate: "2024-01-15", RefundAmount: 95000, Notes: "Refund processed successfully",
			},
		},
	}
}

// List returns requests filtered by status ("" or "all" for everything)
// and a case-insensitive id/customer/product search.
func (r *Returns) List(status, search string) []Return {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := strings.ToLower(search)
	var out []Return
	for _, ret := range r.list {
		if status != "" && status != "all" && ret.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ret.ID), q) &&
			!strings.Contains(strings.ToLower(ret.Customer), q) &&
			!strings.Contains(strings.ToLower(ret.Product), q) {
			continue
		}
		out = append(out, ret)
	}
	return out
}

// UpdateStatus moves a return request to a new status. Rejection zeroes
// the refund; approval and completion stamp the return date.
func (r *Returns) UpdateStatus(id, status string) (*Return, error) {
	switch status {
	case ReturnPending, ReturnApproved, ReturnRejected, ReturnCompleted:
	default:
		return nil, fmt.Errorf("invalid return status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.list {
		if r.list[i].ID != id {
			continue
		}
		r.list[i].Status = status
		switch status {
		case ReturnRejected:
			r.list[i].RefundAmount = 0
			r.list[i].ReturnDate = ""
		case ReturnApproved, ReturnCompleted:
			if r.list[i].ReturnDate == "" {
				r.list[i].ReturnDate = r.now().UTC().Format("2006-01-02")
			}
		}
		out := r.list[i]
		return &out, nil
	}
	return nil, ErrReturnNotFound
}

type ReturnsSummary struct {
	PendingReturns int   `json:"pendingReturns"`
	TotalRefunds   int64 `json:"totalRefunds"`
	ApprovalRate   int   `json:"approvalRate"`
}

// Summary derives the console's headline return figures: pending count,
// refunds paid out over completed returns, and the approval rate as the
// share of requests approved or completed, rounded to a whole percent.
func (r *Returns) Summary() ReturnsSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s ReturnsSummary
	approved := 0
	for _, ret := range r.list {
		switch ret.Status {
		case ReturnPending:
			s.PendingReturns++
		case ReturnCompleted:
			s.TotalRefunds += ret.RefundAmount
			approved++
		case ReturnApproved:
			approved++
		}
	}
	if len(r.list) > 0 {
		s.ApprovalRate = int(float64(approved)/float64(len(r.list))*100 + 0.5)
	}
	return s
}

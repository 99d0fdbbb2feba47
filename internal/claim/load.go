package claim

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for dates in case files and API requests.
const DateLayout = "2006-01-02"

// wireFacts is the JSON shape accepted from case files and the HTTP API.
// The deposit amount may be given either as integer cents or as a decimal
// dollar string ("1500.00"); cents wins when both are present.
type wireFacts struct {
	State              string `json:"state"`
	MoveOutDate        string `json:"move_out_date"`
	DepositDate        string `json:"deposit_date"`
	DepositAmountCents int64  `json:"deposit_amount_cents,omitempty"`
	DepositAmount      string `json:"deposit_amount,omitempty"`
	TenantName         string `json:"tenant_name"`
	TenantEmail        string `json:"tenant_email"`
	RentalAddress      string `json:"rental_address"`
	ForwardingAddress  string `json:"forwarding_address"`
	LandlordInfo       string `json:"landlord_info"`
}

// Parse decodes case facts from JSON.
func Parse(data []byte) (Facts, error) {
	var w wireFacts
	if err := json.Unmarshal(data, &w); err != nil {
		return Facts{}, fmt.Errorf("parsing case facts: %w", err)
	}

	facts := Facts{
		StateCode:         w.State,
		TenantName:        w.TenantName,
		TenantEmail:       w.TenantEmail,
		RentalAddress:     w.RentalAddress,
		ForwardingAddress: w.ForwardingAddress,
		LandlordInfo:      w.LandlordInfo,
	}

	var err error
	if facts.MoveOutDate, err = parseDate(w.MoveOutDate, "move_out_date"); err != nil {
		return Facts{}, err
	}
	if facts.DepositDate, err = parseDate(w.DepositDate, "deposit_date"); err != nil {
		return Facts{}, err
	}
	if facts.DepositAmountCents, err = parseAmount(w); err != nil {
		return Facts{}, err
	}

	return facts, nil
}

// Load reads and decodes a case file from disk.
func Load(path string) (Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Facts{}, fmt.Errorf("reading case file: %w", err)
	}
	facts, err := Parse(data)
	if err != nil {
		return Facts{}, fmt.Errorf("%s: %w", path, err)
	}
	return facts, nil
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil // caught by Validate as a required-field error
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q, want YYYY-MM-DD", field, s)
	}
	return t, nil
}

func parseAmount(w wireFacts) (int64, error) {
	if w.DepositAmountCents != 0 {
		return w.DepositAmountCents, nil
	}
	if w.DepositAmount == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(w.DepositAmount)
	if err != nil {
		return 0, fmt.Errorf("deposit_amount: invalid amount %q", w.DepositAmount)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("deposit_amount: %q has sub-cent precision", w.DepositAmount)
	}
	return cents.IntPart(), nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "freightledger-cli",
		Short: "FreightLedger CLI tool",
		Long:  `A command line interface for interacting with the FreightLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FreightLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(newStatementCmd())
	rootCmd.AddCommand(newConsistencyCmd())
	rootCmd.AddCommand(newInvoiceCmd())
	rootCmd.AddCommand(newDeliveryCmd())
	rootCmd.AddCommand(newPaymentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newStatementCmd() *cobra.Command {
	var view, party, from, to string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Fetch a computed statement",
		Run: func(cmd *cobra.Command, args []string) {
			body, err := fetchStatement(view, party, from, to)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}
			printJSON(payload)
		},
	}

	cmd.Flags().StringVar(&view, "view", "ledger", "Statement view (ledger, cartage_paid, receipts, gst_delivery, cash_delivery, party_summary)")
	cmd.Flags().StringVar(&party, "party", "", "Party substring filter")
	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")

	return cmd
}

func newConsistencyCmd() *cobra.Command {
	var party, from, to string

	cmd := &cobra.Command{
		Use:   "consistency",
		Short: "Verify opening + debits - credits = closing on the ledger view",
		Run: func(cmd *cobra.Command, args []string) {
			body, err := fetchStatement("ledger", party, from, to)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			var payload statementPayload
			if err := json.Unmarshal(body, &payload); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}

			if err := verifyStatement(payload); err != nil {
				fmt.Printf("Consistency check FAILED: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Consistency check PASSED\n")
			fmt.Printf("Opening: %s  Debits: %s  Credits: %s  Closing: %s\n",
				payload.OpeningBalance, payload.Totals.TotalDebit,
				payload.Totals.TotalCredit, payload.Totals.ClosingBalance)
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "Party substring filter")
	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")

	return cmd
}

func newInvoiceCmd() *cobra.Command {
	var date, consignor, consignee, truck, total string
	var cartagePaid bool

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Book a freight invoice",
		Run: func(cmd *cobra.Command, args []string) {
			postDocument("/api/v1/invoices/", map[string]any{
				"date":          date,
				"consignorName": consignor,
				"consigneeName": consignee,
				"truckNo":       truck,
				"grandTotal":    total,
				"cartagePaid":   cartagePaid,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Invoice date (RFC3339)")
	cmd.Flags().StringVar(&consignor, "consignor", "", "Consignor name")
	cmd.Flags().StringVar(&consignee, "consignee", "", "Consignee name")
	cmd.Flags().StringVar(&truck, "truck", "", "Truck number")
	cmd.Flags().StringVar(&total, "total", "0", "Grand total")
	cmd.Flags().BoolVar(&cartagePaid, "cartage-paid", false, "Cartage paid flag")

	return cmd
}

func newDeliveryCmd() *cobra.Command {
	var date, party, truck, amount, gstNo string
	var cash bool

	cmd := &cobra.Command{
		Use:   "delivery",
		Short: "Book a delivery challan",
		Run: func(cmd *cobra.Command, args []string) {
			postDocument("/api/v1/deliveries/", map[string]any{
				"date":         date,
				"partyName":    party,
				"truckNo":      truck,
				"amount":       amount,
				"gstNo":        gstNo,
				"cashDelivery": cash,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Challan date (RFC3339)")
	cmd.Flags().StringVar(&party, "party", "", "Party name")
	cmd.Flags().StringVar(&truck, "truck", "", "Truck number")
	cmd.Flags().StringVar(&amount, "amount", "0", "Challan amount")
	cmd.Flags().StringVar(&gstNo, "gst", "", "GST number")
	cmd.Flags().BoolVar(&cash, "cash", false, "Cash delivery flag")

	return cmd
}

func newPaymentCmd() *cobra.Command {
	var date, party, amount string

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record a payment received",
		Run: func(cmd *cobra.Command, args []string) {
			postDocument("/api/v1/payments/", map[string]any{
				"date":      date,
				"partyName": party,
				"amount":    amount,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Payment date (RFC3339)")
	cmd.Flags().StringVar(&party, "party", "", "Party name")
	cmd.Flags().StringVar(&amount, "amount", "0", "Payment amount")

	return cmd
}

// statementPayload is the subset of the statement response needed for
// the consistency check.
type statementPayload struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Rows           []struct {
		Debit   decimal.Decimal `json:"debit"`
		Credit  decimal.Decimal `json:"credit"`
		Balance decimal.Decimal `json:"balance"`
	} `json:"rows"`
	Totals struct {
		TotalDebit     decimal.Decimal `json:"totalDebit"`
		TotalCredit    decimal.Decimal `json:"totalCredit"`
		ClosingBalance decimal.Decimal `json:"closingBalance"`
	} `json:"totals"`
}

// verifyStatement checks the accounting identity of a ledger statement:
// closing = opening + total debits - total credits, and the last row's
// running balance equals the closing balance.
func verifyStatement(p statementPayload) error {
	expected := p.OpeningBalance.Add(p.Totals.TotalDebit).Sub(p.Totals.TotalCredit)
	if !expected.Equal(p.Totals.ClosingBalance) {
		return fmt.Errorf("closing balance %s does not match opening %s + debits %s - credits %s",
			p.Totals.ClosingBalance, p.OpeningBalance, p.Totals.TotalDebit, p.Totals.TotalCredit)
	}

	if n := len(p.Rows); n > 0 && !p.Rows[n-1].Balance.Equal(p.Totals.ClosingBalance) {
		return fmt.Errorf("last row balance %s does not match closing balance %s",
			p.Rows[n-1].Balance, p.Totals.ClosingBalance)
	}

	return nil
}

func fetchStatement(view, party, from, to string) ([]byte, error) {
	params := url.Values{}
	if view != "" {
		params.Set("view", view)
	}
	if party != "" {
		params.Set("party", party)
	}
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/statements?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func postDocument(path string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

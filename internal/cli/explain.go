package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/core/registry"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

type explanation struct {
	Kind         string                   `json:"kind"`
	Type         string                   `json:"type"`
	Label        string                   `json:"label"`
	Description  string                   `json:"description"`
	Result       string                   `json:"result,omitempty"`
	Participants *explain.Participants    `json:"participants,omitempty"`
	Details      *explain.MonetaryDetails `json:"details,omitempty"`
}

func (a *app) explainCmd() *cobra.Command {
	var (
		metaFile  string
		account   string
		lang      string
		entryType string
	)

	cmd := &cobra.Command{
		Use:   "explain <file|->",
		Short: "Explain a transaction or ledger object",
		Long: `Explain a transaction or ledger object read as JSON: its label, a
description, the counterparties and, with metadata, every balance change.
Metadata may be embedded in the object (meta or metaData) or given with --meta.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var rawMeta []byte
			if metaFile != "" {
				if rawMeta, err = readInput(cmd, metaFile); err != nil {
					return err
				}
			}

			var opts []registry.Option
			if entryType != "" {
				opts = append(opts, registry.WithEntryHint(entryType))
			}
			obj, err := registry.Parse(raw, rawMeta, opts...)
			if err != nil {
				return err
			}

			v, err := a.view(account, lang)
			if err != nil {
				return err
			}
			out, err := explainObject(obj, v)
			if err != nil {
				return err
			}
			a.log.Debug("explained", zap.String("kind", out.Kind), zap.String("type", out.Type))

			return a.print(cmd, out, func(w io.Writer) { writeExplanation(w, out) })
		},
	}

	cmd.Flags().StringVar(&metaFile, "meta", "", "transaction metadata file")
	cmd.Flags().StringVar(&account, "account", "", "account to explain from (overrides explain.account)")
	cmd.Flags().StringVar(&lang, "lang", "", "explanation language (overrides explain.language)")
	cmd.Flags().StringVar(&entryType, "entry-type", "", "parse the input as this ledger entry type")
	return cmd
}

func explainObject(obj *registry.Object, v explain.View) (*explanation, error) {
	if obj.Kind() == registry.KindLedgerEntry {
		e := obj.LedgerEntry()
		out := &explanation{Kind: obj.Kind().String(), Type: e.TypeName()}
		var err error
		if out.Label, err = explain.LabelEntry(e, v); err != nil {
			return nil, err
		}
		if out.Description, err = explain.DescribeEntry(e, v); err != nil {
			return nil, err
		}
		return out, nil
	}

	t := obj.Transaction()
	out := &explanation{Kind: obj.Kind().String(), Type: t.TypeName()}
	var err error
	if out.Label, err = explain.Label(t, v); err != nil {
		return nil, err
	}
	if out.Description, err = explain.Describe(t, v); err != nil {
		return nil, err
	}
	participants, err := explain.ParticipantsOf(t)
	if err != nil {
		return nil, err
	}
	out.Participants = &participants

	m := obj.Metadata()
	if m != nil {
		out.Result = m.TransactionResult
	}
	details, err := explain.MonetaryDetailsOf(t, m, v)
	if err != nil {
		return nil, err
	}
	out.Details = &details
	return out, nil
}

func writeExplanation(w io.Writer, e *explanation) {
	fmt.Fprintf(w, "%s\n", e.Label)
	fmt.Fprintf(w, "%s\n", e.Description)
	if e.Result != "" {
		fmt.Fprintf(w, "Result: %s\n", e.Result)
	}
	if p := e.Participants; p != nil {
		fmt.Fprintf(w, "From: %s\n", p.Start)
		if p.End != "" {
			fmt.Fprintf(w, "To: %s\n", p.End)
		}
	}
	if d := e.Details; d != nil {
		if d.Value != nil {
			fmt.Fprintf(w, "Value: %s\n", d.Value.String())
		}
		if len(d.Mutations) > 0 {
			fmt.Fprintln(w, "Balance changes:")
			for _, m := range d.Mutations {
				fmt.Fprintf(w, "  %s\n", formatMutation(m))
			}
		}
	}
}

func formatMutation(m types.BalanceMutation) string {
	amount, err := m.Amount()
	if err != nil {
		return fmt.Sprintf("%s %s %s %s", m.Account, m.Action, m.Value.String(), m.Currency)
	}
	return fmt.Sprintf("%s %s %s", m.Account, m.Action, amount.String())
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a transaction against the ledger before submission",
		Long: `Check that a transaction can succeed on the current validated ledger:
balances, reserves, trust lines and destinations are read from the configured
lookup endpoint. Exits non-zero when the transaction would fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			obj, err := registry.Parse(raw, nil)
			if err != nil {
				return err
			}
			if obj.Kind() != registry.KindTransaction {
				return fmt.Errorf("validate expects a transaction, got a %s", obj.Kind())
			}

			ctx := cmd.Context()
			l, closer, err := a.openLookup(ctx, a.cfg.Lookup, a.log)
			if err != nil {
				return err
			}
			defer closer.Close()

			t := obj.Transaction()
			err = explain.Validate(ctx, t, l)
			result := map[string]string{"type": t.TypeName(), "status": "ok"}

			var validationErr *explain.ValidationError
			switch {
			case errors.As(err, &validationErr):
				result["status"] = "invalid"
				result["kind"] = string(validationErr.Kind)
				result["message"] = validationErr.Message
			case err != nil:
				return err
			}

			if err := a.print(cmd, result, func(w io.Writer) {
				if validationErr != nil {
					fmt.Fprintf(w, "%s: %s\n", validationErr.Kind, validationErr.Message)
					return
				}
				fmt.Fprintf(w, "%s can be submitted\n", t.TypeName())
			}); err != nil {
				return err
			}
			if validationErr != nil {
				cmd.SilenceErrors = true
				return validationErr
			}
			return nil
		},
	}
}

func (a *app) signingPayloadCmd() *cobra.Command {
	var signer string

	cmd := &cobra.Command{
		Use:   "signing-payload <file|->",
		Short: "Print the hex bytes a signer signs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			t, err := tx.FromJSON(raw)
			if err != nil {
				return err
			}

			var payload string
			if signer != "" {
				payload, err = tx.MultisigningPayload(t, signer)
			} else {
				payload, err = tx.SigningPayload(t)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]string{"type": t.TypeName(), "payload": payload}, func(w io.Writer) {
				fmt.Fprintln(w, payload)
			})
		},
	}

	cmd.Flags().StringVar(&signer, "signer", "", "produce the multisigning payload for this signer account")
	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
)

type currencyResult struct {
	Code    string `json:"code"`
	Display string `json:"display"`
	Valid   bool   `json:"valid"`
}

func (a *app) currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <code>...",
		Short: "Decode currency codes for display",
		Long: `Decode three-letter and 40-character hex currency codes into the text a
wallet shows. Codes that do not decode are printed unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]currencyResult, 0, len(args))
			for _, code := range args {
				results = append(results, currencyResult{
					Code:    code,
					Display: codec.DecodeCurrencyCode(code),
					Valid:   codec.IsValidCurrencyCode(code),
				})
			}
			return a.print(cmd, results, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintln(w, r.Display)
				}
			})
		},
	}
}

type amountResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	NFTSerial  string `json:"nft_serial,omitempty"`
}

func (a *app) amountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amount <value>",
		Short: "Normalize an amount value",
		Long: `Normalize a decimal amount value the way balances are displayed. Values
that encode an NFT serial are reported with the serial.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := codec.ParseDecimal(args[0])
			if err != nil {
				return err
			}
			r := amountResult{Input: args[0], Normalized: codec.PlainString(codec.NormalizeAmount(d))}
			if serial, ok := codec.DecodeNFTSentinel(d); ok {
				r.NFTSerial = serial
			}
			return a.print(cmd, r, func(w io.Writer) {
				fmt.Fprintln(w, r.Normalized)
				if r.NFTSerial != "" {
					fmt.Fprintf(w, "NFT serial: %s\n", r.NFTSerial)
				}
			})
		},
	}
}

// errNotSentinel is returned by nft decode for ordinary amounts.
var errNotSentinel = errors.New("value does not carry an NFT serial")

func (a *app) nftCmd() *cobra.Command {
	nft := &cobra.Command{
		Use:   "nft",
		Short: "Convert NFT serials to and from balance values",
	}

	nft.AddCommand(&cobra.Command{
		Use:   "encode <serial>",
		Short: "Encode an NFT serial as a balance value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := codec.EncodeNFTSentinel(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]string{"serial": args[0], "value": value}, func(w io.Writer) {
				fmt.Fprintln(w, value)
			})
		},
	})

	nft.AddCommand(&cobra.Command{
		Use:   "decode <value>",
		Short: "Decode the NFT serial carried by a balance value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := codec.ParseDecimal(args[0])
			if err != nil {
				return err
			}
			serial, ok := codec.DecodeNFTSentinel(d)
			if !ok {
				return fmt.Errorf("%w: %s", errNotSentinel, args[0])
			}
			return a.print(cmd, map[string]string{"value": args[0], "serial": serial}, func(w io.Writer) {
				fmt.Fprintln(w, serial)
			})
		},
	})

	return nft
}

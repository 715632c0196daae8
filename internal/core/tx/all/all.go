// Package all imports all transaction sub-packages to trigger their init() registrations.
// Import this package wherever transactions are parsed.
package all

import (
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/account"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/amm"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/check"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/clawback"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/credential"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/did"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/escrow"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/mpt"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/nftoken"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/offer"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/oracle"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/paychan"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/pseudo"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/system"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/trustset"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/xchain"
)

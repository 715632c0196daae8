package amendment

import (
	"encoding/hex"
	"sort"
)

var (
	features       = make(map[[32]byte]*Feature)
	featuresByName = make(map[string]*Feature)
)

func init() {
	for _, name := range []string{
		"fixDirectoryLimit", "fixPriceOracleOrder", "fixMPTDeliveredAmount",
		"fixAMMClawbackRounding", "TokenEscrow", "fixEnforceNFTokenTrustlineV2",
		"fixAMMv1_3", "PermissionedDEX", "Batch", "SingleAssetVault",
		"PermissionDelegation", "fixPayChanCancelAfter", "fixInvalidTxFlags",
		"fixFrozenLPTokenTransfer", "DeepFreeze", "PermissionedDomains",
		"DynamicNFT", "Credentials", "AMMClawback", "fixAMMv1_2", "MPTokensV1",
		"InvariantsV1_1", "fixNFTokenPageLinks", "fixInnerObjTemplate2",
		"fixEnforceNFTokenTrustline", "fixReducedOffersV2", "NFTokenMintOffer",
		"fixAMMv1_1", "fixPreviousTxnID", "fixXChainRewardRounding", "fixEmptyDID",
		"PriceOracle", "fixAMMOverflowOffer", "fixInnerObjTemplate",
		"fixNFTokenReserve", "fixFillOrKill", "DID", "fixDisallowIncomingV1",
		"XChainBridge", "AMM", "Clawback", "fixReducedOffersV1", "fixNFTokenRemint",
		"fixNonFungibleTokensV1_2", "fixUniversalNumber", "XRPFees",
		"DisallowIncoming", "ImmediateOfferKilled", "fixRemoveNFTokenAutoTrustLine",
		"fixTrustLinesToSelf", "NonFungibleTokensV1_1", "ExpandedSignerList",
		"CheckCashMakesTrustLine", "fixRmSmallIncreasedQOffers",
		"fixSTAmountCanonicalize", "FlowSortStrands", "TicketBatch", "NegativeUNL",
		"fixAmendmentMajorityCalc", "HardenedValidations", "fix1781",
		"RequireFullyCanonicalSig", "fixQualityUpperBound", "DeletableAccounts",
		"fixPayChanRecipientOwnerDir", "fixCheckThreading",
		"fixMasterKeyAsRegularKey", "fixTakerDryOfferRemoval", "MultiSignReserve",
		"fix1578", "fix1515", "DepositPreauth", "fix1623", "fix1543", "fix1571",
		"Checks", "DepositAuth", "fix1513", "Flow",
	} {
		register(name, StatusActive)
	}

	for _, name := range []string{
		"fixNFTokenNegOffer", "fixNFTokenDirV1", "NonFungibleTokensV1",
		"CryptoConditionsSuite",
	} {
		register(name, StatusObsolete)
	}

	for _, name := range []string{
		"MultiSign", "TrustSetAuth", "FeeEscalation", "PayChan",
		"CryptoConditions", "TickSize", "fix1368", "Escrow", "fix1373",
		"EnforceInvariants", "SortedDirectories", "fix1201", "fix1512",
		"fix1523", "fix1528", "FlowCross",
	} {
		register(name, StatusRetired)
	}
}

func register(name string, status Status) {
	f := &Feature{Name: name, ID: FeatureID(name), Status: status}
	features[f.ID] = f
	featuresByName[name] = f
}

// Lookup returns the feature whose hex ID is id. Case is ignored.
func Lookup(id string) (*Feature, bool) {
	raw, err := hex.DecodeString(id)
	if err != nil || len(raw) != 32 {
		return nil, false
	}
	f, ok := features[[32]byte(raw)]
	return f, ok
}

// GetFeatureByName returns the feature with the given name, or nil if not found.
func GetFeatureByName(name string) *Feature {
	return featuresByName[name]
}

// AllFeatures returns every known feature ordered by name.
func AllFeatures() []*Feature {
	result := make([]*Feature, 0, len(features))
	for _, f := range features {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// FeatureCount returns the number of known features.
func FeatureCount() int {
	return len(features)
}

package helius

// TransferEvent is an enhanced transaction as delivered by the Helius API,
// either pushed via webhook or fetched from the address transaction history.
// Immutable once observed.
type TransferEvent struct {
	Signature       string           `json:"signature"`
	Type            string           `json:"type"`
	FeePayer        string           `json:"feePayer"`
	Timestamp       string           `json:"timestamp,omitempty"`
	TokenTransfers  []TokenTransfer  `json:"tokenTransfers"`
	NativeTransfers []NativeTransfer `json:"nativeTransfers"`
}

type TokenTransfer struct {
	Mint            string  `json:"mint"`
	TokenAmount     float64 `json:"tokenAmount"`
	TokenStandard   string  `json:"tokenStandard"`
	FromUserAccount string  `json:"fromUserAccount"`
	ToUserAccount   string  `json:"toUserAccount"`
}

type NativeTransfer struct {
	Amount          int64  `json:"amount"`
	FromUserAccount string `json:"fromUserAccount"`
	ToUserAccount   string `json:"toUserAccount"`
}

// TokenStandardFungible marks SPL fungible token transfers; the poller
// ignores everything else (NFTs, compressed assets).
const TokenStandardFungible = "Fungible"

// TokenMetadata is the on-chain metadata of a mint. The update authority is
// used as a platform identity fingerprint.
type TokenMetadata struct {
	Mint            string `json:"mint"`
	Symbol          string `json:"symbol"`
	UpdateAuthority string `json:"updateAuthority"`
}

// TokenBalance is a single token position of a wallet.
type TokenBalance struct {
	Mint     string `json:"mint"`
	Amount   int64  `json:"amount"`
	Decimals int    `json:"decimals"`
}

type Balances struct {
	Tokens []TokenBalance `json:"tokens"`
}

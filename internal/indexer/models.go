package indexer

// RawTransaction is a transaction record as returned by the explorer txlist
// action. Numeric fields stay in their base-10 wire form.
type RawTransaction struct {
	BlockNumber  string `json:"blockNumber"`
	TimeStamp    string `json:"timeStamp"`
	Hash         string `json:"hash"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	GasPrice     string `json:"gasPrice"`
	GasUsed      string `json:"gasUsed"`
	IsError      string `json:"isError"`
	MethodID     string `json:"methodId"`
	FunctionName string `json:"functionName"`
}

// InternalTransfer is a value movement performed by contract code on behalf of
// a top-level transaction.
type InternalTransfer struct {
	TransactionHash string `json:"-"`
	BlockNumber     string `json:"blockNumber"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Type            string `json:"type"`
	IsError         string `json:"isError"`
}

// Page is the outcome of a history fetch. Unavailable distinguishes a failed
// upstream call from an account with no transactions.
type Page struct {
	Transactions []RawTransaction
	Unavailable  bool
}

package nuls

import "fmt"

// TxType tags the transaction variant.
type TxType uint16

const (
	TxReward        TxType = 1
	TxTransfer      TxType = 2
	TxAlias         TxType = 3
	TxRegisterAgent TxType = 4
	TxJoinConsensus TxType = 5
	TxCancelDeposit TxType = 6
	TxYellowCard    TxType = 7
	TxRedCard       TxType = 8
	TxStopAgent     TxType = 9
)

var txTypeNames = map[TxType]string{
	TxReward:        "reward",
	TxTransfer:      "transfer",
	TxAlias:         "alias",
	TxRegisterAgent: "register_agent",
	TxJoinConsensus: "join_consensus",
	TxCancelDeposit: "cancel_deposit",
	TxYellowCard:    "yellow_card",
	TxRedCard:       "red_card",
	TxStopAgent:     "stop_agent",
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// placeHolder is the filler carried by reward and transfer transactions.
var placeHolder = []byte{0xFF, 0xFF, 0xFF, 0xFF}

// ModuleData is the type-specific payload of a transaction.
type ModuleData interface {
	TxType() TxType
}

type (
	RewardData   struct{}
	TransferData struct{}

	AliasData struct {
		Address Address
		Alias   string
	}

	RegisterAgentData struct {
		Deposit        uint64
		AgentAddress   Address
		PackingAddress Address
		RewardAddress  Address
		CommissionRate float64
	}

	JoinConsensusData struct {
		Deposit   uint64
		Address   Address
		AgentHash Hash
	}

	CancelDepositData struct {
		JoinTxHash Hash
	}

	YellowCardData struct {
		Addresses []Address
	}

	RedCardData struct {
		Address  Address
		Reason   uint8
		Evidence []byte
	}

	StopAgentData struct {
		CreateTxHash Hash
	}
)

func (RewardData) TxType() TxType        { return TxReward }
func (TransferData) TxType() TxType      { return TxTransfer }
func (AliasData) TxType() TxType         { return TxAlias }
func (RegisterAgentData) TxType() TxType { return TxRegisterAgent }
func (JoinConsensusData) TxType() TxType { return TxJoinConsensus }
func (CancelDepositData) TxType() TxType { return TxCancelDeposit }
func (YellowCardData) TxType() TxType    { return TxYellowCard }
func (RedCardData) TxType() TxType       { return TxRedCard }
func (StopAgentData) TxType() TxType     { return TxStopAgent }

// DecodeModuleData reads the payload for txType at off.
func DecodeModuleData(txType TxType, buf []byte, off int) (ModuleData, int, error) {
	switch txType {
	case TxReward:
		next, err := skipPlaceHolder(buf, off)
		return RewardData{}, next, err
	case TxTransfer:
		next, err := skipPlaceHolder(buf, off)
		return TransferData{}, next, err
	case TxAlias:
		return decodeAlias(buf, off)
	case TxRegisterAgent:
		return decodeRegisterAgent(buf, off)
	case TxJoinConsensus:
		return decodeJoinConsensus(buf, off)
	case TxCancelDeposit:
		h, next, err := ReadHash(buf, off)
		if err != nil {
			return nil, off, withField(err, "joinTxHash")
		}
		return CancelDepositData{JoinTxHash: h}, next, nil
	case TxYellowCard:
		return decodeYellowCard(buf, off)
	case TxRedCard:
		return decodeRedCard(buf, off)
	case TxStopAgent:
		h, next, err := ReadHash(buf, off)
		if err != nil {
			return nil, off, withField(err, "createTxHash")
		}
		return StopAgentData{CreateTxHash: h}, next, nil
	default:
		return nil, off, decodeErr(off, "type", fmt.Errorf("%w: %d", ErrUnsupportedTransactionType, uint16(txType)))
	}
}

func skipPlaceHolder(buf []byte, off int) (int, error) {
	if err := need(buf, off, len(placeHolder)); err != nil {
		return off, withField(err, "placeholder")
	}
	return off + len(placeHolder), nil
}

func decodeAlias(buf []byte, off int) (ModuleData, int, error) {
	address, next, err := ReadVarBytes(buf, off)
	if err != nil {
		return nil, off, withField(err, "alias address")
	}
	alias, next, err := ReadVarBytes(buf, next)
	if err != nil {
		return nil, off, withField(err, "alias")
	}
	return AliasData{Address: address, Alias: string(alias)}, next, nil
}

func decodeRegisterAgent(buf []byte, off int) (ModuleData, int, error) {
	var (
		d    RegisterAgentData
		next = off
		err  error
	)
	if d.Deposit, next, err = ReadUint64(buf, next); err != nil {
		return nil, off, withField(err, "deposit")
	}
	if d.AgentAddress, next, err = ReadAddress(buf, next); err != nil {
		return nil, off, withField(err, "agentAddress")
	}
	if d.PackingAddress, next, err = ReadAddress(buf, next); err != nil {
		return nil, off, withField(err, "packingAddress")
	}
	if d.RewardAddress, next, err = ReadAddress(buf, next); err != nil {
		return nil, off, withField(err, "rewardAddress")
	}
	if d.CommissionRate, next, err = ReadFloat64(buf, next); err != nil {
		return nil, off, withField(err, "commissionRate")
	}
	return d, next, nil
}

func decodeJoinConsensus(buf []byte, off int) (ModuleData, int, error) {
	var (
		d    JoinConsensusData
		next = off
		err  error
	)
	if d.Deposit, next, err = ReadUint64(buf, next); err != nil {
		return nil, off, withField(err, "deposit")
	}
	if d.Address, next, err = ReadAddress(buf, next); err != nil {
		return nil, off, withField(err, "address")
	}
	if d.AgentHash, next, err = ReadHash(buf, next); err != nil {
		return nil, off, withField(err, "agentHash")
	}
	return d, next, nil
}

func decodeYellowCard(buf []byte, off int) (ModuleData, int, error) {
	count, next, err := ReadUint8(buf, off)
	if err != nil {
		return nil, off, withField(err, "yellow card count")
	}
	d := YellowCardData{Addresses: make([]Address, 0, count)}
	for i := 0; i < int(count); i++ {
		var a Address
		if a, next, err = ReadAddress(buf, next); err != nil {
			return nil, off, withField(err, fmt.Sprintf("yellow card address %d", i))
		}
		d.Addresses = append(d.Addresses, a)
	}
	return d, next, nil
}

func decodeRedCard(buf []byte, off int) (ModuleData, int, error) {
	var (
		d    RedCardData
		next = off
		err  error
	)
	var address []byte
	if address, next, err = ReadVarBytes(buf, next); err != nil {
		return nil, off, withField(err, "red card address")
	}
	d.Address = address
	if d.Reason, next, err = ReadUint8(buf, next); err != nil {
		return nil, off, withField(err, "reason")
	}
	if d.Evidence, next, err = ReadVarBytes(buf, next); err != nil {
		return nil, off, withField(err, "evidence")
	}
	return d, next, nil
}

package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/auctionhouse/base/abi"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/chain"
)

// Erc20Contract is the fungible payment collaborator. TransferFrom pulls a
// bid into custody, Transfer pays refunds and the settlement payout.
type Erc20Contract interface {
	BalanceOf(c bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address) (*big.Int, error)
	Allowance(c bCtx.Ctx, chainId domain.ChainId, token, owner, spender domain.Address) (*big.Int, error)
	Transfer(c bCtx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) error
	TransferFrom(c bCtx.Ctx, chainId domain.ChainId, token, from, to domain.Address, amount *big.Int) error
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) BalanceOf(c bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(token)), nil, e.abi, method,
		common.HexToAddress(string(owner)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(c bCtx.Ctx, chainId domain.ChainId, token, owner, spender domain.Address) (*big.Int, error) {
	method := "allowance"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(token)), nil, e.abi, method,
		common.HexToAddress(string(owner)), common.HexToAddress(string(spender)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Transfer(c bCtx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) error {
	method := "transfer"
	_, err := e.chainService.Transact(c, int32(chainId), common.HexToAddress(string(token)), e.abi, method,
		common.HexToAddress(string(to)), amount)
	return err
}

func (e *Erc20) TransferFrom(c bCtx.Ctx, chainId domain.ChainId, token, from, to domain.Address, amount *big.Int) error {
	method := "transferFrom"
	_, err := e.chainService.Transact(c, int32(chainId), common.HexToAddress(string(token)), e.abi, method,
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), amount)
	return err
}

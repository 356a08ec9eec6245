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

// Erc721Contract is the non-fungible custody collaborator. The engine reads
// ownership and approval, and moves the asset only at settlement.
type Erc721Contract interface {
	Supports721Interface(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error)
	OwnerOf(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId *big.Int) (domain.Address, error)
	GetApproved(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId *big.Int) (domain.Address, error)
	IsApprovedForAll(c bCtx.Ctx, chainId domain.ChainId, collection, owner, operator domain.Address) (bool, error)
	TransferFrom(c bCtx.Ctx, chainId domain.ChainId, collection, from, to domain.Address, tokenId *big.Int) error
}

type Erc721 struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) OwnerOf(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId *big.Int) (domain.Address, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) GetApproved(c bCtx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId *big.Int) (domain.Address, error) {
	method := "getApproved"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) IsApprovedForAll(c bCtx.Ctx, chainId domain.ChainId, collection, owner, operator domain.Address) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(c, int32(chainId), common.HexToAddress(string(collection)), nil, e.abi, method,
		common.HexToAddress(string(owner)), common.HexToAddress(string(operator)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(c bCtx.Ctx, chainId domain.ChainId, collection, from, to domain.Address, tokenId *big.Int) error {
	method := "transferFrom"
	_, err := e.chainService.Transact(c, int32(chainId), common.HexToAddress(string(collection)), e.abi, method,
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), tokenId)
	return err
}

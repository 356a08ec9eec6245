package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/pricenormalizer"
	bValidator "github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain"
	mmiddleware "github.com/x-xyz/auctionhouse/middleware"
	"github.com/x-xyz/auctionhouse/service/chain"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
	"github.com/x-xyz/auctionhouse/service/pricefeed"
	"github.com/x-xyz/auctionhouse/service/query"
	access_delivery "github.com/x-xyz/auctionhouse/stores/access/delivery/http"
	access_repository "github.com/x-xyz/auctionhouse/stores/access/repository"
	access_usecase "github.com/x-xyz/auctionhouse/stores/access/usecase"
	auction_delivery "github.com/x-xyz/auctionhouse/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/auctionhouse/stores/auction/repository"
	auction_usecase "github.com/x-xyz/auctionhouse/stores/auction/usecase"
	paytoken_repository "github.com/x-xyz/auctionhouse/stores/paytoken/repository"
	upgrade_delivery "github.com/x-xyz/auctionhouse/stores/upgrade/delivery/http"
	upgrade_logic "github.com/x-xyz/auctionhouse/stores/upgrade/logic"
	upgrade_usecase "github.com/x-xyz/auctionhouse/stores/upgrade/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	archiveRpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
		archiveRpcUrl := networks.GetString(fmt.Sprintf("%s.archiveRpcUrl", k))
		archiveRpcs[chainId] = archiveRpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
		SignerKey:      viper.GetString("custody.signerKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)
	oracle := pricefeed.New(chainService)

	custody := domain.Address(chainService.Sender().Hex()).ToLower()
	if addr := viper.GetString("custody.address"); addr != "" {
		custody = domain.Address(addr).ToLower()
	}

	// construct repository, usecase and delivery
	accessRepo := access_repository.NewAccess(q)
	payTokenRepo := paytoken_repository.NewPayTokenRepo(q)
	auctionRepo := auction_repository.NewAuction(q)
	eventRepo := auction_repository.NewEvent(q)
	refundRepo := auction_repository.NewRefund(q)

	accessUC := access_usecase.NewAccess(&access_usecase.AccessUseCaseCfg{
		AccessRepo:   accessRepo,
		PayTokenRepo: payTokenRepo,
		EventRepo:    eventRepo,
	})

	normalizer := pricenormalizer.NewNormalizer(&pricenormalizer.NormalizerCfg{
		Access: accessUC,
		Oracle: oracle,
	})

	extensionWindow := viper.GetDuration("auction.extensionWindow")
	gate := upgrade_usecase.NewGate(&upgrade_usecase.GateCfg{
		Access: accessUC,
		Event:  eventRepo,
	})
	if err := gate.Register(upgrade_logic.NewV1(extensionWindow)); err != nil {
		panic(err)
	}
	if err := gate.Register(upgrade_logic.NewV2(extensionWindow)); err != nil {
		panic(err)
	}

	auctionUC := auction_usecase.NewAuction(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:   auctionRepo,
		RefundRepo:    refundRepo,
		EventRepo:     eventRepo,
		PayTokenRepo:  payTokenRepo,
		Access:        accessUC,
		Normalizer:    normalizer,
		Erc20:         erc20Service,
		Erc721:        erc721Service,
		Gate:          gate,
		Custody:       custody,
		StrictRefunds: viper.GetBool("auction.strictRefunds"),
	})

	access_delivery.New(e, accessUC)
	auction_delivery.New(e, auctionUC, eventRepo)
	upgrade_delivery.New(e, gate)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
		})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

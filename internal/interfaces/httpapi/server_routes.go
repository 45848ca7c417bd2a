package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("GET /v1/formations/{name}", handler.GetFormation)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}", handler.GetPlayerByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/auctions", handler.ListActiveAuctions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/auctions/history", handler.ListAuctionHistory)
	mux.HandleFunc("GET /v1/auctions/{auctionID}", handler.GetAuction)
	mux.HandleFunc("GET /v1/squads/{squadID}", handler.GetSquad)
	mux.HandleFunc("GET /v1/squads/{squadID}/stats", handler.GetSquadStats)
	mux.HandleFunc("GET /v1/squads/{squadID}/transfers", handler.ListSquadTransfers)
	mux.HandleFunc("GET /v1/squads/{squadID}/formation/validation", handler.ValidateSquadFormation)
}

func registerIdentityRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/squads", RequireIdentity(http.HandlerFunc(handler.CreateSquad)))
	mux.Handle("GET /v1/squads/me", RequireIdentity(http.HandlerFunc(handler.GetMySquad)))
	mux.Handle("PUT /v1/squads/{squadID}/name", RequireIdentity(http.HandlerFunc(handler.UpdateTeamName)))
	mux.Handle("POST /v1/squads/{squadID}/players", RequireIdentity(http.HandlerFunc(handler.AddSquadPlayer)))
	mux.Handle("DELETE /v1/squads/{squadID}/players/{playerID}", RequireIdentity(http.HandlerFunc(handler.RemoveSquadPlayer)))
	mux.Handle("POST /v1/squads/{squadID}/transfers", RequireIdentity(http.HandlerFunc(handler.TransferSquadPlayer)))
	mux.Handle("PUT /v1/squads/{squadID}/captain", RequireIdentity(http.HandlerFunc(handler.SetSquadCaptain)))
	mux.Handle("PUT /v1/squads/{squadID}/vice-captain", RequireIdentity(http.HandlerFunc(handler.SetSquadViceCaptain)))

	mux.Handle("POST /v1/auctions", RequireIdentity(http.HandlerFunc(handler.CreateAuction)))
	mux.Handle("POST /v1/auctions/{auctionID}/bids", RequireIdentity(http.HandlerFunc(handler.PlaceBid)))
	mux.Handle("POST /v1/auctions/{auctionID}/close", RequireIdentity(http.HandlerFunc(handler.CloseAuction)))
	mux.Handle("POST /v1/auctions/{auctionID}/cancel", RequireIdentity(http.HandlerFunc(handler.CancelAuction)))
	mux.Handle("GET /v1/leagues/{leagueID}/auctions/history/me", RequireIdentity(http.HandlerFunc(handler.ListMyAuctionHistory)))
}

package internal

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/nso-orienteering/results/internal/standings"
)

type Issuer string

const IssuerCupSort Issuer = "cup_sort"

const SortCookieName = "cup_sort"

type sortClaims struct {
	jwt.RegisteredClaims
	Orders standings.SortState `json:"orders"`
}

func (a *Application) encodeSortState(state standings.SortState) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &sortClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: string(IssuerCupSort),
			ID:     uuid.NewString(),
		},
		Orders: state,
	})
	return tok.SignedString(a.sortKey)
}

func (a *Application) decodeSortState(tokenStr string) (standings.SortState, error) {
	if tokenStr == "" {
		return nil, errors.New("no token")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sortClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.sortKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse sort token: %w", err)
	}

	claims, ok := token.Claims.(*sortClaims)
	if !token.Valid || !ok {
		return nil, fmt.Errorf("invalid sort token")
	}
	if claims.Issuer != string(IssuerCupSort) {
		return nil, fmt.Errorf("token is not a sort token")
	}
	return claims.Orders, nil
}

// GetSortState reads the visitor's cup sort state. A missing or unusable
// cookie yields the default order for every cluster.
func (a *Application) GetSortState(r *http.Request) standings.SortState {
	log := a.requestLog(r)
	cookie, err := r.Cookie(SortCookieName)
	if err != nil {
		return standings.SortState{}
	}
	state, err := a.decodeSortState(cookie.Value)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring sort cookie")
		return standings.SortState{}
	}
	if a.Cup == nil {
		return state
	}
	valid, errs := a.Cup.Validate(state)
	for _, err := range errs {
		log.Warn().Err(err).Msg("dropping stale cluster order")
	}
	return valid
}

func (a *Application) SetSortState(w http.ResponseWriter, state standings.SortState) error {
	signed, err := a.encodeSortState(state)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SortCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

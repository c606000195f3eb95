// Package sqlitetest provides an in-memory sqlite database with the
// application schema for repository and service tests.
package sqlitetest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ujwegh/gamemart/internal/app/models"
)

const schema = `
CREATE TABLE users
(
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    telegram_id      INTEGER UNIQUE NOT NULL,
    username         TEXT NOT NULL DEFAULT '',
    balance_rub      INTEGER NOT NULL DEFAULT 0,
    balance_usdt     INTEGER NOT NULL DEFAULT 0,
    referral_percent TEXT,
    orders_count     INTEGER NOT NULL DEFAULT 0,
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (balance_rub >= 0),
    CHECK (balance_usdt >= 0)
);
CREATE TABLE games
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE offers
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id    INTEGER NOT NULL REFERENCES games (id),
    title      TEXT NOT NULL,
    price_rub  INTEGER NOT NULL,
    price_usdt INTEGER NOT NULL,
    is_enabled BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE TABLE orders
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    number     TEXT UNIQUE NOT NULL,
    user_id    INTEGER NOT NULL REFERENCES users (id),
    offer_id   INTEGER REFERENCES offers (id),
    payment_id INTEGER,
    currency   TEXT NOT NULL,
    amount     INTEGER NOT NULL,
    status     TEXT NOT NULL DEFAULT 'created',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE TABLE payments
(
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id       INTEGER NOT NULL REFERENCES users (id),
    offer_id      INTEGER REFERENCES offers (id),
    order_id      INTEGER NOT NULL UNIQUE REFERENCES orders (id),
    kind          TEXT NOT NULL,
    amount_to_pay INTEGER NOT NULL,
    currency      TEXT NOT NULL,
    external_id   TEXT NOT NULL UNIQUE,
    pay_url       TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL DEFAULT 'pending',
    expires_at    TIMESTAMP NOT NULL,
    settled_at    TIMESTAMP,
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
);
CREATE TABLE transactions
(
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id         INTEGER NOT NULL REFERENCES users (id),
    refer_id        INTEGER REFERENCES users (id),
    order_id        INTEGER REFERENCES orders (id),
    type            TEXT NOT NULL,
    currency        TEXT NOT NULL,
    amount          INTEGER NOT NULL,
    earned          INTEGER,
    idempotency_key TEXT NOT NULL UNIQUE,
    created_at      TIMESTAMP NOT NULL
);
CREATE TABLE referrals
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL UNIQUE REFERENCES users (id),
    refer_id   INTEGER NOT NULL REFERENCES users (id),
    created_at TIMESTAMP NOT NULL,
    CHECK (user_id <> refer_id)
);
CREATE TABLE withdrawals
(
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     INTEGER NOT NULL REFERENCES users (id),
    currency    TEXT NOT NULL,
    amount      INTEGER NOT NULL,
    status      TEXT NOT NULL DEFAULT 'pending',
    transfer_id TEXT,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
);
`

var seq atomic.Int64

// Open returns a fresh database private to the calling test. A single
// connection is used so concurrent transactions are serialized.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared&_foreign_keys=1", seq.Add(1))
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("could not create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// SeedUser creates a user whose balances are backed by deposit rows, so the
// ledger and the cached balance agree from the start.
func SeedUser(t *testing.T, db *sqlx.DB, telegramID int64, rub, usdt models.Amount) *models.User {
	t.Helper()
	user := &models.User{TelegramID: telegramID, Username: fmt.Sprintf("user%d", telegramID), BalanceRUB: rub, BalanceUSDT: usdt}
	err := db.Get(&user.ID, `INSERT INTO users (telegram_id, username, balance_rub, balance_usdt) VALUES ($1, $2, $3, $4) RETURNING id;`,
		user.TelegramID, user.Username, rub, usdt)
	if err != nil {
		t.Fatalf("could not seed user: %v", err)
	}
	for currency, amount := range map[models.Currency]models.Amount{models.RUB: rub, models.USDT: usdt} {
		if amount == 0 {
			continue
		}
		_, err := db.Exec(`INSERT INTO transactions (user_id, type, currency, amount, idempotency_key, created_at) VALUES ($1, $2, $3, $4, $5, $6);`,
			user.ID, models.TxDeposit, currency, amount, fmt.Sprintf("seed:%d:%s", user.ID, currency), time.Now().UTC())
		if err != nil {
			t.Fatalf("could not seed deposit: %v", err)
		}
	}
	return user
}

// SetReferralPercent overrides the commission rate of a user.
func SetReferralPercent(t *testing.T, db *sqlx.DB, userID int64, percent string) {
	t.Helper()
	if _, err := db.Exec(`UPDATE users SET referral_percent = $1 WHERE id = $2;`, percent, userID); err != nil {
		t.Fatalf("could not set referral percent: %v", err)
	}
}

func SeedReferral(t *testing.T, db *sqlx.DB, userID, referID int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO referrals (user_id, refer_id, created_at) VALUES ($1, $2, $3);`, userID, referID, time.Now().UTC())
	if err != nil {
		t.Fatalf("could not seed referral: %v", err)
	}
}

func CountRows(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query, args...); err != nil {
		t.Fatalf("could not count rows: %v", err)
	}
	return n
}

func SeedOffer(t *testing.T, db *sqlx.DB, rub, usdt models.Amount) *models.Offer {
	t.Helper()
	var gameID int64
	if err := db.Get(&gameID, `INSERT INTO games (title) VALUES ('game') RETURNING id;`); err != nil {
		t.Fatalf("could not seed game: %v", err)
	}
	offer := &models.Offer{GameID: gameID, Title: "offer", PriceRUB: rub, PriceUSDT: usdt, IsEnabled: true}
	err := db.Get(&offer.ID, `INSERT INTO offers (game_id, title, price_rub, price_usdt) VALUES ($1, $2, $3, $4) RETURNING id;`,
		gameID, offer.Title, rub, usdt)
	if err != nil {
		t.Fatalf("could not seed offer: %v", err)
	}
	return offer
}

// SeedPendingPurchase stores an order awaiting payment together with its
// payment intent, the state checkout leaves behind.
func SeedPendingPurchase(t *testing.T, db *sqlx.DB, userID int64, offer *models.Offer, currency models.Currency, externalID string) (*models.Order, *models.Payment) {
	t.Helper()
	now := time.Now().UTC()
	order := &models.Order{
		Number: fmt.Sprintf("ord-%s", externalID), UserID: userID, OfferID: &offer.ID,
		Currency: currency, Amount: offer.Price(currency), Status: models.OrderPendingPayment,
		CreatedAt: now, UpdatedAt: now,
	}
	err := db.Get(&order.ID, `INSERT INTO orders (number, user_id, offer_id, currency, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		order.Number, order.UserID, order.OfferID, order.Currency, order.Amount, order.Status, now, now)
	if err != nil {
		t.Fatalf("could not seed order: %v", err)
	}
	payment := SeedPayment(t, db, &models.Payment{
		UserID: userID, OfferID: &offer.ID, OrderID: order.ID, Kind: models.PaymentPurchase,
		AmountToPay: order.Amount, Currency: currency, ExternalID: externalID,
		Status: models.PaymentPending, ExpiresAt: now.Add(time.Hour),
	})
	if _, err := db.Exec(`UPDATE orders SET payment_id = $1 WHERE id = $2;`, payment.ID, order.ID); err != nil {
		t.Fatalf("could not link payment: %v", err)
	}
	order.PaymentID = &payment.ID
	return order, payment
}

func SeedPayment(t *testing.T, db *sqlx.DB, p *models.Payment) *models.Payment {
	t.Helper()
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	err := db.Get(&p.ID, `INSERT INTO payments (user_id, offer_id, order_id, kind, amount_to_pay, currency, external_id, pay_url, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id;`,
		p.UserID, p.OfferID, p.OrderID, p.Kind, p.AmountToPay, p.Currency, p.ExternalID, p.PayURL, p.Status, p.ExpiresAt, now, now)
	if err != nil {
		t.Fatalf("could not seed payment: %v", err)
	}
	return p
}

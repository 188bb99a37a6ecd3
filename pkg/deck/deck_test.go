package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.True(t, d.Cards[0].Equal(NewCard(2, Clubs)))
	assert.True(t, d.Cards[51].Equal(NewCard(14, Spades)))

	hash := d.HashCode()
	d.Shuffle(1)
	assert.NotEqual(t, hash, d.HashCode())

	// same seed, same order
	shuffled := d.HashCode()
	d.Shuffle(1)
	assert.Equal(t, shuffled, d.HashCode())
	assert.Equal(t, int64(1), d.Seed())

	d.Shuffle(2)
	assert.NotEqual(t, shuffled, d.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	assert.Equal(t, 0, d.CardsLeft())

	card, err := d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_Trim(t *testing.T) {
	d := New()
	d.Trim(4)
	assert.Equal(t, 52, d.CardsLeft())

	d.Trim(5)
	assert.Equal(t, 50, d.CardsLeft())

	d.Trim(6)
	assert.Equal(t, 48, d.CardsLeft())

	assert.Panics(t, func() {
		d.Trim(0)
	})
}

func TestDeck_Shuffle_badSeed(t *testing.T) {
	assert.Panics(t, func() {
		New().Shuffle(-1)
	})
}

package warming

import (
	"testing"

	"gestorzap/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func numbers(keys ...string) []models.WarmingNumber {
	out := make([]models.WarmingNumber, 0, len(keys))
	for _, k := range keys {
		out = append(out, NumberKind{}.Build(Line{Primary: k}))
	}
	return out
}

func numeros(recs []models.WarmingNumber) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Numero)
	}
	return out
}

func TestNumberKind(t *testing.T) {
	k := NumberKind{}

	n := k.Build(Line{Primary: "+5511912345678", Secondary: "chip 1"})
	assert.Equal(t, "+5511912345678", n.Numero)
	assert.Equal(t, "https://wa.me/5511912345678", n.URL)
	if assert.NotNil(t, n.Descricao) {
		assert.Equal(t, "chip 1", *n.Descricao)
	}
	assert.True(t, k.Valid(n))

	bare := k.Build(Line{Primary: "+5511912345678"})
	assert.Nil(t, bare.Descricao)

	assert.False(t, k.Valid(k.Build(Line{Primary: "5511912345678", Secondary: "missing plus"})))
	assert.False(t, k.Valid(k.Build(Line{Primary: "+1415555000"})))
}

func TestNumberKind_URLReproducibleFromNumero(t *testing.T) {
	for _, numero := range []string{"+5511912345678", "+55 11 91234-5678", "+55(21)99999-0000", "+55١١٩"} {
		n := NumberKind{}.Build(Line{Primary: numero})
		assert.Equal(t, "https://wa.me/"+stripNonDigits(numero), n.URL)
	}
}

func stripNonDigits(s string) string {
	out := []rune{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

func TestGroupKind(t *testing.T) {
	k := GroupKind{}

	g := k.Build(Line{Primary: "Team A", Secondary: "https://chat.whatsapp.com/xyz"})
	assert.Equal(t, "Team A", g.Nome)
	assert.Equal(t, "https://chat.whatsapp.com/xyz", g.URL)
	assert.True(t, k.Valid(g))
	assert.Equal(t, g.URL, k.Key(g))

	assert.False(t, k.Valid(k.Build(Line{Primary: "Team A"})))
	assert.False(t, k.Valid(k.Build(Line{Primary: "Team A", Secondary: "https://t.me/xyz"})))
}

func TestValidate_IsPureFilter(t *testing.T) {
	in := numbers("+5511900000001", "5511900000002", "+5511900000003", "+1999")
	once := Validate[models.WarmingNumber](NumberKind{}, in)
	twice := Validate[models.WarmingNumber](NumberKind{}, once)

	assert.Equal(t, []string{"+5511900000001", "+5511900000003"}, numeros(once))
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("validate not idempotent (-once +twice):\n%s", diff)
	}
	assert.Len(t, in, 4, "input must not be modified")
}

func TestDedupe_OrderPreservingAndKeyStable(t *testing.T) {
	existing := map[string]struct{}{"A": {}, "B": {}}
	got := Dedupe[models.WarmingNumber](NumberKind{}, numbers("A", "C", "C", "D"), existing)
	assert.Equal(t, []string{"C", "D"}, numeros(got))
	assert.Len(t, existing, 2, "existing keys must not be modified")
}

func TestDedupe_GroupsByURL(t *testing.T) {
	k := GroupKind{}
	in := []models.WarmingGroup{
		k.Build(Line{Primary: "A", Secondary: "https://chat.whatsapp.com/1"}),
		k.Build(Line{Primary: "B", Secondary: "https://chat.whatsapp.com/1"}),
		k.Build(Line{Primary: "A", Secondary: "https://chat.whatsapp.com/2"}),
	}
	got := Dedupe[models.WarmingGroup](k, in, nil)
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Nome)
	assert.Equal(t, "https://chat.whatsapp.com/2", got[1].URL)
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *Profile {
	return &Profile{
		ID:             "p-1",
		MaritalStatus:  MaritalMarried,
		PropertyRegime: RegimeInCommunity,
		Spouse:         &Person{FirstName: "Thandi", LastName: "Mokoena"},
	}
}

func TestProfile_Validate_Success(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestProfile_Validate_EmptyID(t *testing.T) {
	p := validProfile()
	p.ID = ""
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_BadStatus(t *testing.T) {
	p := validProfile()
	p.MaritalStatus = "complicated"
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_SpouseOnUnmarried(t *testing.T) {
	p := validProfile()
	p.MaritalStatus = MaritalSingle
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_PartnerWithoutFlag(t *testing.T) {
	p := validProfile()
	p.Partner = &Person{FirstName: "Sam"}
	assert.Error(t, p.Validate())

	p.HasLifePartner = true
	assert.NoError(t, p.Validate())
}

func TestValidRegime(t *testing.T) {
	assert.True(t, ValidRegime(RegimeNone))
	assert.True(t, ValidRegime(RegimeInCommunity))
	assert.True(t, ValidRegime(RegimeOutOfCommunityAccrual))
	assert.False(t, ValidRegime("communal"))
}

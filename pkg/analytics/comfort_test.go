package analytics

import "testing"

func TestComfortAcceptableRegime(t *testing.T) {
	// Known acceptable-comfort operating point: 24 °C, gentle air
	// movement, 50% RH.
	c := Comfort(24, 0.1)

	if c.PMV < -1 || c.PMV > 1 {
		t.Errorf("PMV = %g, want within [-1, 1]", c.PMV)
	}
	if c.PPD >= 30 {
		t.Errorf("PPD = %g, want below 30", c.PPD)
	}
}

func TestComfortClampsExtremes(t *testing.T) {
	hot := Comfort(45, 0)
	if hot.PMV != 3 {
		t.Errorf("PMV at 45°C = %g, want clamped to 3", hot.PMV)
	}
	if hot.PPD < 90 {
		t.Errorf("PPD at 45°C = %g, want near 100", hot.PPD)
	}

	cold := Comfort(-10, 0)
	if cold.PMV != -3 {
		t.Errorf("PMV at -10°C = %g, want clamped to -3", cold.PMV)
	}
}

func TestComfortDraftCooling(t *testing.T) {
	still := Comfort(26, 0.05)
	breezy := Comfort(26, 0.5)
	if breezy.PMV >= still.PMV {
		t.Errorf("PMV with draft = %g, want below still-air %g", breezy.PMV, still.PMV)
	}
}

func TestPPDNeutralMinimum(t *testing.T) {
	if ppd := predictedDissatisfied(0); ppd < 4.9 || ppd > 5.1 {
		t.Errorf("PPD at neutral vote = %g, want ~5", ppd)
	}
}

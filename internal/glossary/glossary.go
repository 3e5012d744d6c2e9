package glossary

// Term is one cash-book term with its explanation.
type Term struct {
	Name        string
	Description string
}

// Terms returns the cash-book terminology as shown to operators.
func Terms() []Term {
	return []Term{
		{
			Name:        "Anfangssaldo",
			Description: "Der Betrag an Bargeld, der zu Beginn eines Geschäftstages in die Kasse eingelegt wird. Beim Öffnen der Kasse geben Sie diesen Betrag ein, um den Startbestand festzulegen.",
		},
		{
			Name:        "Schlussbilanz",
			Description: "Der Kassenstand am Ende des Geschäftstages nach Abschluss aller Transaktionen. Dieser Wert ergibt sich aus dem Anfangssaldo zuzüglich aller Einnahmen und abzüglich aller Ausgaben.",
		},
		{
			Name:        "Bargeldeingang",
			Description: "Einzahlungen von Bargeld in die Kasse, die nicht aus regulären Verkäufen stammen, wie z.B. private Einlagen oder Bareinzahlungen von der Bank. Solche Transaktionen werden im Kassenbuch erfasst.",
		},
		{
			Name:        "Bargeldauszahlung",
			Description: "Auszahlungen von Bargeld aus der Kasse für betriebliche Zwecke, wie z.B. Gehaltszahlungen oder betriebliche Ausgaben. Auch diese Transaktionen werden im Kassenbuch erfasst.",
		},
		{
			Name:        "Bargeldverkauf",
			Description: "Einnahmen aus Verkäufen, die in bar getätigt wurden. Diese werden automatisch vom Kassensystem erfasst und erhöhen den Kassenbestand.",
		},
		{
			Name:        "Wechselgeld in bar",
			Description: "Bargeld, das in die Kasse gelegt wird, um ausreichend Wechselgeld für Transaktionen bereitzuhalten. Dies kann beim Öffnen der Kasse als Teil des Anfangssaldos eingegeben werden.",
		},
		{
			Name:        "Bargeldrückerstattung",
			Description: "Rückzahlungen von Bargeld an Kunden, beispielsweise bei Warenrückgaben. Diese Ausgaben werden im Kassenbuch erfasst und verringern den Kassenbestand.",
		},
	}
}

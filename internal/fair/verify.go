package fair

// Proof is the data a player needs to re-derive a settled round: the
// revealed server seed, its published commitment, and the triple that keyed
// the random stream.
type Proof struct {
	ServerSeed     string `json:"server_seed"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed"`
	Nonce          int    `json:"nonce"`
}

// VerifyCommitment checks that a revealed server seed matches the hash that
// was published before the round resolved.
func VerifyCommitment(serverSeed, serverSeedHash string) bool {
	return HashSeed(serverSeed) == serverSeedHash
}

// Replay recomputes the first count floats of the proof's stream. Callers
// feed these into the same resolver the house ran to confirm the outcome.
func (p Proof) Replay(count int) ([]float64, bool) {
	if !VerifyCommitment(p.ServerSeed, p.ServerSeedHash) {
		return nil, false
	}
	return Floats(p.ServerSeed, p.ClientSeed, p.Nonce, 0, count), true
}

package decoder

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type ping struct {
	Seq  uint64
	Note string
}

func (p *ping) UnmarshalWithReader(r *borsh.Reader) {
	p.Seq = r.U64("seq")
	p.Note = r.String("note")
}

func (p *ping) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.Seq)
	w.String("note", p.Note)
}

type pong struct {
	Ok bool
}

func (p *pong) UnmarshalWithReader(r *borsh.Reader) {
	p.Ok = r.Bool("ok")
}

func (p *pong) MarshalWithWriter(w *borsh.Writer) {
	w.Bool(p.Ok)
}

type counter struct {
	Authority solana.PublicKey
	Count     uint32
}

func (c *counter) UnmarshalWithReader(r *borsh.Reader) {
	c.Authority = r.PublicKey("authority")
	c.Count = r.U32("count")
}

func (c *counter) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(c.Authority)
	w.U32(c.Count)
}

var testProgramID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

func testEvents() *Table {
	return MustTable("test", Events,
		EventShape[ping]("Ping"),
		EventShape[pong]("Pong"),
	)
}

func testProgram() *Program {
	return &Program{
		Name:     "test",
		ID:       testProgramID,
		Accounts: MustTable("test", Accounts, AccountShape[counter]("Counter")),
		Events:   testEvents(),
	}
}

func mustEncode(t interface{ Fatalf(string, ...any) }, table *Table, v any) []byte {
	data, err := table.Encode(v)
	if err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	return data
}

package instr

import (
	"testing"

	"github.com/go-librian/librian/node"
)

func TestDisposable(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		want bool
	}{
		{"node-sticky", &NodeInstr{Node: &node.AsideNode{}, Disposable: false}, false},
		{"node-disposable", &NodeInstr{Node: &node.AsideNode{}, Disposable: true}, true},
		{"choice", &Choice{Disposable: true}, true},
		{"call", &Call{Disposable: false}, false},
		{"goto", &Goto{Disposable: true}, true},
		{"adv_end", &AdvEnd{Disposable: true}, true},
	}

	for _, test := range tests {
		if got := test.inst.IsDisposable(); got != test.want {
			t.Errorf("%s: got %v, wanted %v", test.name, got, test.want)
		}
	}
}

func TestNodeInstrItype(t *testing.T) {
	n := &NodeInstr{Node: &node.AsideNode{Aside: "hi"}}
	if n.Itype() != node.Aside {
		t.Errorf("got %s, wanted %s", n.Itype(), node.Aside)
	}
}

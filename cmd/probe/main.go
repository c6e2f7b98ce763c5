package main

import (
	"fmt"
	"log"

	"github.com/ecc1/sx126x"
)

func main() {
	r := sx126x.Open()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	fmt.Printf("device: %s\n", r.Device())
	fmt.Printf("state: %s\n", r.State())
	e := sx126x.NewGetDeviceErrors()
	r.Execute(e)
	fmt.Printf("device errors: %04X\n", e.OpError().Bits())
	r.Init(868100000)
	fmt.Printf("frequency: %d\n", r.Frequency())
	p := sx126x.NewGetPacketType()
	r.Execute(p)
	fmt.Printf("packet type: %d\n", p.PacketType())
	s := sx126x.NewReadRegister[sx126x.LoraSyncWordMsb]()
	r.Execute(s)
	fmt.Printf("sync word MSB: %02X\n", byte(s.Register()))
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
}

package walkthrough

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Customer mirrors the embedded customer document.
type Customer struct {
	CustomerID string `json:"customerid" yaml:"customerid"`
	Age        uint32 `json:"age" yaml:"age"`
	EyeColor   string `json:"eyecolor" yaml:"eyecolor"`
	Name       string `json:"name" yaml:"name"`
	Gender     string `json:"gender" yaml:"gender"`
	Company    string `json:"company" yaml:"company"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	Address    string `json:"address" yaml:"address"`
}

const customerJSON = `
{
    "customerid": "630c2272eabd3d30fe44d139",
    "age": 28,
    "eyecolor": "brown",
    "name": "Mabel Haley",
    "gender": "female",
    "company": "ENOMEN",
    "email": "mabelhaley@enomen.com",
    "phone": "+1 (880) 516-2365",
    "address": "184 Bergen Court, Gorham, American Samoa, 8722"
}
`

// DecodeGeneric decodes into a map; numbers stay json.Number so integers survive.
func DecodeGeneric(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return out, nil
}

// DecodeCustomer decodes into the typed struct.
func DecodeCustomer(raw []byte) (Customer, error) {
	var c Customer
	if err := json.Unmarshal(raw, &c); err != nil {
		return Customer{}, fmt.Errorf("decode customer: %w", err)
	}
	return c, nil
}

func jsonDemo(_ context.Context, env *Env) error {
	w := env.Out
	raw := []byte(customerJSON)

	generic, err := DecodeGeneric(raw)
	if err != nil {
		fmt.Fprintln(w, "sorry, could not parse json string !")
		return nil
	}
	id, _ := generic["customerid"].(string)
	fmt.Fprintf(w, "method-1 : customerid : %s\n", id)
	if n, ok := generic["age"].(json.Number); ok {
		age, err := n.Int64()
		if err == nil {
			fmt.Fprintf(w, "method-1 : age : %d\n", age)
		}
	}

	c, err := DecodeCustomer(raw)
	if err != nil {
		fmt.Fprintln(w, "sorry, could not parse json string !")
		return nil
	}
	fmt.Fprintf(w, "method-2 : customerid : %s\n", c.CustomerID)
	fmt.Fprintf(w, "method-2 : age : %d\n", c.Age)

	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("render customer yaml: %w", err)
	}
	fmt.Fprintf(w, "\nas yaml >>\n\n%s", out)
	return nil
}

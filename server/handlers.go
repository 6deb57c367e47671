package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec"
	"github.com/gaborage/paramspec/adapter"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/schema"
)

const mimeApplicationYAML = "application/yaml"

type contractRequest struct {
	Name string `param:"name" validate:"required,max=256,contract_name"`
}

type paramsRequest struct {
	Name      string `param:"name" validate:"required,max=256,contract_name"`
	Adapter   string `query:"adapter" validate:"omitempty,max=32"`
	ParamType string `query:"param_type" validate:"omitempty,max=32"`
	Format    string `query:"format" validate:"omitempty,oneof=json yaml"`
}

type contractsResponse struct {
	Contracts      []string       `json:"contracts"`
	Adapters       []adapter.Name `json:"adapters"`
	DefaultAdapter adapter.Name   `json:"default_adapter"`
}

type schemaResponse struct {
	Contract string         `json:"contract"`
	Fields   []schema.Field `json:"fields"`
}

type paramsResponse struct {
	Contract string         `json:"contract"`
	Adapter  adapter.Name   `json:"adapter"`
	Params   adapter.Output `json:"params"`
}

func (s *Server) listContracts(c echo.Context) error {
	return formatSuccessResponse(c, contractsResponse{
		Contracts:      s.contracts.SortedNames(),
		Adapters:       adapter.Names(),
		DefaultAdapter: s.resolver.DefaultAdapter(),
	})
}

func (s *Server) contractSchema(c echo.Context) error {
	var req contractRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ct, err := s.lookup(req.Name)
	if err != nil {
		return err
	}

	sc := s.resolver.Schema(ct)
	return formatSuccessResponse(c, schemaResponse{Contract: sc.Name(), Fields: sc.Fields()})
}

func (s *Server) contractParams(c echo.Context) error {
	var req paramsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ct, err := s.lookup(req.Name)
	if err != nil {
		return err
	}

	var opts []paramspec.Option
	if req.Adapter != "" {
		opts = append(opts, paramspec.WithAdapter(adapter.Name(req.Adapter)))
	}
	if req.ParamType != "" {
		opts = append(opts, paramspec.WithParamType(req.ParamType))
	}

	out, err := s.resolver.From(ct, opts...)
	if err != nil {
		var unsupported *adapter.UnsupportedAdapterError
		if errors.As(err, &unsupported) {
			return NewUnsupportedAdapterError(err, string(unsupported.Name))
		}
		return err
	}

	if req.Format == "yaml" {
		b, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, mimeApplicationYAML, b)
	}

	return formatSuccessResponse(c, paramsResponse{
		Contract: ct.Name(),
		Adapter:  out.Adapter(),
		Params:   out,
	})
}

func (s *Server) lookup(name string) (contract.Contract, error) {
	ct, err := s.contracts.Lookup(name)
	if errors.Is(err, contract.ErrContractNotFound) {
		return nil, NewNotFoundError("contract '" + name + "'")
	}
	return ct, err
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return NewBadRequestError("invalid request parameters")
	}
	return c.Validate(req)
}

// Command oversell fires concurrent orders for one product and reports how
// many were accepted. With a stock of N and quantity 1, exactly N orders
// should succeed and the final stock should be zero.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type orderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type orderRequest struct {
	OrderDate  string      `json:"order_date"`
	CustomerID int64       `json:"customer_id"`
	EmployeeID int64       `json:"employee_id"`
	ShipperID  int64       `json:"shipper_id"`
	Items      []orderItem `json:"items"`
}

type productEnvelope struct {
	Data struct {
		ProductName     string `json:"product_name"`
		QuantityInStock int    `json:"quantity_in_stock"`
	} `json:"data"`
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	productID := flag.Int64("product", 0, "product id to order")
	customerID := flag.Int64("customer", 0, "customer id")
	employeeID := flag.Int64("employee", 0, "employee id")
	shipperID := flag.Int64("shipper", 0, "shipper id")
	quantity := flag.Int("quantity", 1, "quantity per order")
	concurrency := flag.Int("concurrency", 50, "number of parallel orders")
	flag.Parse()

	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     true,
		Encoding:          "console",
		Level:             "info",
		DisableStacktrace: true,
	})
	defer log.Sync()

	if *productID <= 0 || *customerID <= 0 || *employeeID <= 0 || *shipperID <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	client := resty.New().
		SetBaseURL(*baseURL + "/v1").
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	before, err := stock(client, *productID)
	if err != nil {
		log.Fatal("failed to read product", zap.Error(err))
	}
	log.Info("starting", zap.Int("stock", before), zap.Int("orders", *concurrency), zap.Int("quantity", *quantity))

	body := orderRequest{
		OrderDate:  time.Now().Format("2006-01-02"),
		CustomerID: *customerID,
		EmployeeID: *employeeID,
		ShipperID:  *shipperID,
		Items:      []orderItem{{ProductID: *productID, Quantity: *quantity}},
	}

	var (
		mu       sync.Mutex
		statuses = map[int]int{}
		wg       sync.WaitGroup
		start    = make(chan struct{})
	)
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			code := 0
			resp, err := client.R().SetBody(body).Post("/orders")
			if err != nil {
				log.Warn("request failed", zap.Error(err))
			} else {
				code = resp.StatusCode()
			}
			mu.Lock()
			statuses[code]++
			mu.Unlock()
		}()
	}

	began := time.Now()
	close(start)
	wg.Wait()

	after, err := stock(client, *productID)
	if err != nil {
		log.Fatal("failed to read product", zap.Error(err))
	}

	fmt.Printf("elapsed:        %s\n", time.Since(began).Round(time.Millisecond))
	fmt.Printf("created (201):  %d\n", statuses[http.StatusCreated])
	fmt.Printf("rejected (422): %d\n", statuses[http.StatusUnprocessableEntity])
	for code, n := range statuses {
		if code != http.StatusCreated && code != http.StatusUnprocessableEntity {
			fmt.Printf("other (%d):    %d\n", code, n)
		}
	}
	fmt.Printf("stock:          %d -> %d\n", before, after)

	if want := before - statuses[http.StatusCreated]*(*quantity); after != want || after < 0 {
		fmt.Printf("MISMATCH: expected final stock %d\n", want)
		os.Exit(1)
	}
}

func stock(client *resty.Client, id int64) (int, error) {
	var env productEnvelope
	resp, err := client.R().SetResult(&env).Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("GET product %d: %s", id, resp.Status())
	}
	return env.Data.QuantityInStock, nil
}

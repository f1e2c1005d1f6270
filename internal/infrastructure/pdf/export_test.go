package pdf

// Money expone el formateo de montos para los tests.
var Money = money
